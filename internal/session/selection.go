package session

import (
	"fmt"

	"dataplot/internal/chart"
)

// Selection is the user's current x column, y column and plot kind. Column
// names are not checked when set; plotting validates them against the
// loaded table.
type Selection struct {
	X    string
	Y    string
	Kind chart.Kind
}

func NewSelection() Selection {
	return Selection{Kind: chart.Line}
}

func (s *Selection) SetX(name string) {
	s.X = name
}

func (s *Selection) SetY(name string) {
	s.Y = name
}

func (s *Selection) SetKind(kind chart.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown plot kind %q", kind)
	}
	s.Kind = kind
	return nil
}

// ClearColumns drops both column choices and keeps the plot kind.
func (s *Selection) ClearColumns() {
	s.X = ""
	s.Y = ""
}
