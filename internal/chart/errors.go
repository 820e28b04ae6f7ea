package chart

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when plotting before any table is loaded.
var ErrNoData = errors.New("no data loaded")

// MissingSelectionError reports a plot request with no column chosen for Axis.
type MissingSelectionError struct {
	Axis string
}

func (e *MissingSelectionError) Error() string {
	return fmt.Sprintf("no %s column selected", e.Axis)
}

// UnknownColumnError reports a selection that names a column absent from the
// current table, typically left over from a previous file.
type UnknownColumnError struct {
	Axis string
	Name string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("%s column %q does not exist in the loaded table", e.Axis, e.Name)
}

// NonNumericError reports a y cell that cannot be plotted as a number.
type NonNumericError struct {
	Column string
	Row    int
	Raw    string
}

func (e *NonNumericError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("column %q row %d is empty", e.Column, e.Row+1)
	}
	return fmt.Sprintf("column %q row %d: %q is not numeric", e.Column, e.Row+1, e.Raw)
}

// RenderError wraps failures while turning valid selections into a chart.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "render chart: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
