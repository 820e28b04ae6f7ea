// Package session holds the application state: the loaded table, the
// user's selection and the last chart, and the transitions between them.
package session

import (
	"io"

	"dataplot/internal/chart"
	"dataplot/internal/logger"
	"dataplot/internal/table"
)

type State int

const (
	Empty State = iota
	Loaded
	Plotted
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Loaded:
		return "loaded"
	case Plotted:
		return "plotted"
	default:
		return "unknown"
	}
}

type Loader interface {
	Load(path string) (*table.Table, error)
	LoadReader(name string, r io.Reader) (*table.Table, error)
}

type Renderer interface {
	Render(t *table.Table, x, y string, kind chart.Kind) (*chart.Chart, error)
}

// Shell owns the loaded table, the selection and the current chart. It is
// driven from UI callbacks only and is not safe for concurrent use.
type Shell struct {
	loader      Loader
	renderer    Renderer
	logger      logger.Logger
	previewRows int

	state     State
	table     *table.Table
	columns   []string
	selection Selection
	chart     *chart.Chart
}

func NewShell(loader Loader, renderer Renderer, previewRows int, log logger.Logger) *Shell {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Shell{
		loader:      loader,
		renderer:    renderer,
		logger:      log,
		previewRows: previewRows,
		state:       Empty,
		selection:   NewSelection(),
	}
}

// Load replaces the table with the file at path. On failure nothing changes.
// On success the column list is recomputed, the x/y selection is cleared and
// any chart is dropped.
func (s *Shell) Load(path string) error {
	t, err := s.loader.Load(path)
	return s.replace(path, t, err)
}

// LoadReader is Load over an already opened stream; name picks the format.
func (s *Shell) LoadReader(name string, r io.Reader) error {
	t, err := s.loader.LoadReader(name, r)
	return s.replace(name, t, err)
}

func (s *Shell) replace(path string, t *table.Table, err error) error {
	if err != nil {
		s.logger.Warning("Shell", "load rejected", map[string]interface{}{
			"path":  path,
			"state": s.state.String(),
			"error": err.Error(),
		})
		return err
	}

	s.table = t
	s.columns = table.Columns(t)
	s.selection.ClearColumns()
	s.chart = nil
	s.state = Loaded

	s.logger.Info("Shell", "table loaded", map[string]interface{}{
		"path":    path,
		"rows":    t.Len(),
		"columns": len(s.columns),
	})
	return nil
}

// Plot renders the current selection. On failure the previous chart and
// state are kept.
func (s *Shell) Plot() (*chart.Chart, error) {
	sel := s.selection
	c, err := s.renderer.Render(s.table, sel.X, sel.Y, sel.Kind)
	if err != nil {
		s.logger.Warning("Shell", "plot rejected", map[string]interface{}{
			"x":     sel.X,
			"y":     sel.Y,
			"kind":  string(sel.Kind),
			"state": s.state.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	s.chart = c
	s.state = Plotted

	s.logger.Info("Shell", "chart plotted", map[string]interface{}{
		"x":    sel.X,
		"y":    sel.Y,
		"kind": string(sel.Kind),
	})
	return c, nil
}

func (s *Shell) SetX(name string) {
	s.selection.SetX(name)
}

func (s *Shell) SetY(name string) {
	s.selection.SetY(name)
}

func (s *Shell) SetKind(kind chart.Kind) error {
	return s.selection.SetKind(kind)
}

func (s *Shell) State() State {
	return s.state
}

func (s *Shell) Table() *table.Table {
	return s.table
}

// Columns returns a copy of the column list of the loaded table.
func (s *Shell) Columns() []string {
	return append([]string(nil), s.columns...)
}

func (s *Shell) Selection() Selection {
	return s.selection
}

func (s *Shell) Chart() *chart.Chart {
	return s.chart
}

// Preview renders the leading rows of the loaded table, or "" when empty.
func (s *Shell) Preview() string {
	if s.table == nil {
		return ""
	}
	return s.table.Preview(s.previewRows)
}
