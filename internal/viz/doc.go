// Package viz renders topologies as styled terminal text.
//
// The package provides:
//
//   - [Summary]: counts, residues and bonds of a topology in a titled box
//   - [DegreeHistogram] and [PlotDegrees]: the bond degree distribution,
//     plotted with asciigraph
//   - [Palette]: CPK-like colors per atom type, with several themes
//
// Output degrades to plain text when the terminal has no color support.
package viz
