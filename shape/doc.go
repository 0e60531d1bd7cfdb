// Package shape implements the syllable-level reordering core of an
// Indic-family complex-script text shaper: categorization, syllable
// segmentation, initial reordering (pre-GSUB), and final reordering
// (post-GSUB basic features). It covers Devanagari, Bengali, Gujarati,
// Gurmukhi, Kannada, Malayalam, Oriya, Tamil, Telugu and Khmer.
//
// GSUB/GPOS application, font loading and Unicode normalization are the
// caller's responsibility; this package only mutates category, position,
// mask and cluster fields on the glyphs it is given.
package shape
