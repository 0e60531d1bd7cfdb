package shape

// DemoPlanner is a minimal, in-memory FeaturePlanner: it records the
// features and pauses it was asked to register and runs GSUB pauses
// immediately against a buffer, treating every lookup as a no-op (no
// real GSUB table is consulted). It exists so this package's own tests
// and the cmd/indicshape diagnostic tool can exercise the full Shape
// entry point without standing up a real OpenType shaping engine,
// mirroring the narrow planner role §6 describes.
type DemoPlanner struct {
	Script   Tag
	Features []DemoFeature
	buf      *Buffer
}

// DemoFeature records one planner call for inspection by tests/tools.
type DemoFeature struct {
	Tag      Tag
	Mask     uint32
	IsGlobal bool
}

// NewDemoPlanner creates a planner bound to buf and the OpenType script
// tag it should report from GetChosenScript.
func NewDemoPlanner(buf *Buffer, script Tag) *DemoPlanner {
	return &DemoPlanner{Script: script, buf: buf}
}

func (p *DemoPlanner) AddBoolFeature(tag Tag, isGlobal bool) {
	p.Features = append(p.Features, DemoFeature{Tag: tag, Mask: 1, IsGlobal: isGlobal})
}

func (p *DemoPlanner) AddFeature(tag Tag, mask uint32, isGlobal bool) {
	p.Features = append(p.Features, DemoFeature{Tag: tag, Mask: mask, IsGlobal: isGlobal})
}

func (p *DemoPlanner) AddGSUBPause(fn func(buf *Buffer)) {
	if fn != nil {
		fn(p.buf)
	}
}

func (p *DemoPlanner) Get1Mask(tag Tag) uint32 {
	for _, f := range basicFeatures {
		if f.Tag == tag {
			return f.Mask
		}
	}
	for _, f := range otherFeatures {
		if f.Tag == tag {
			return f.Mask
		}
	}
	return 0
}

func (p *DemoPlanner) GetChosenScript() Tag { return p.Script }
