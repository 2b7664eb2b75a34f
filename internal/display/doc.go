// Package display renders movies for terminal output.
//
// Rendering settings travel in an explicit Style value rather than package
// state, so two renderers with different glyph sets can coexist. Tables are
// drawn with go-pretty.
package display
