// Package chart turns two columns of a table into a line, scatter or bar
// chart rendered with gonum/plot.
package chart

import "image"

const Title = "Data Plot"

// Point is one row of a line or scatter chart. X is the row index when the
// x column is not numeric, with Label shown on a nominal axis.
type Point struct {
	X, Y  float64
	Label string
}

// Bar is one bar per table row. Position is x itself when every x value is
// numeric, otherwise the row index with Label shown on a nominal axis.
type Bar struct {
	Position float64
	Label    string
	Height   float64
}

// Chart is the result of one plot request. The fields other than Image fully
// determine what Image shows.
type Chart struct {
	Kind    Kind
	Title   string
	XLabel  string
	YLabel  string
	Points  []Point
	Bars    []Bar
	Nominal bool
	Image   image.Image
}
