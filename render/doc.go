// Package render draws a word graph as a node-link diagram.
//
// [ToDOT] produces Graphviz DOT text with one vertex per distinct node and one
// labelled arrow per transition; accepting nodes are drawn as double circles.
// [RenderSVG] lays the DOT out with an embedded Graphviz build. Both are for
// inspection only and define no storage format.
package render
