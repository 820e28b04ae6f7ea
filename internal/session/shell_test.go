package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataplot/internal/chart"
	"dataplot/internal/table"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newShell() *Shell {
	return NewShell(
		table.NewLoader("", nil, nil),
		chart.NewRenderer(3, 2, nil, nil),
		5,
		nil,
	)
}

func TestNewShellIsEmpty(t *testing.T) {
	s := newShell()

	assert.Equal(t, Empty, s.State())
	assert.Nil(t, s.Table())
	assert.Empty(t, s.Columns())
	assert.Nil(t, s.Chart())
	assert.Equal(t, "", s.Preview())
	assert.Equal(t, chart.Line, s.Selection().Kind)
}

func TestLoadExposesColumnsInFileOrder(t *testing.T) {
	s := newShell()

	require.NoError(t, s.Load(writeCSV(t, "data.csv", "time,value,extra\n1,10,a\n")))

	assert.Equal(t, Loaded, s.State())
	assert.Equal(t, []string{"time", "value", "extra"}, s.Columns())
	assert.NotEmpty(t, s.Preview())
}

func TestPlotScenarioLine(t *testing.T) {
	s := newShell()
	require.NoError(t, s.Load(writeCSV(t, "data.csv", "time,value\n1,10\n2,20\n3,15\n")))

	s.SetX("time")
	s.SetY("value")
	require.NoError(t, s.SetKind(chart.Line))

	c, err := s.Plot()
	require.NoError(t, err)

	assert.Equal(t, Plotted, s.State())
	assert.Same(t, c, s.Chart())
	assert.Equal(t, []chart.Point{{X: 1, Y: 10, Label: "1"}, {X: 2, Y: 20, Label: "2"}, {X: 3, Y: 15, Label: "3"}}, c.Points)
	assert.Equal(t, "time", c.XLabel)
	assert.Equal(t, "value", c.YLabel)
}

func TestPlotScenarioBar(t *testing.T) {
	s := newShell()
	require.NoError(t, s.Load(writeCSV(t, "data.csv", "time,value\n1,10\n2,20\n3,15\n")))

	s.SetX("time")
	s.SetY("value")
	require.NoError(t, s.SetKind(chart.Bar))

	c, err := s.Plot()
	require.NoError(t, err)

	require.Len(t, c.Bars, 3)
	for i, want := range []struct{ pos, height float64 }{{1, 10}, {2, 20}, {3, 15}} {
		assert.Equal(t, want.pos, c.Bars[i].Position)
		assert.Equal(t, want.height, c.Bars[i].Height)
	}
}

func TestPlotWithoutData(t *testing.T) {
	s := newShell()
	s.SetX("time")
	s.SetY("value")

	_, err := s.Plot()

	assert.ErrorIs(t, err, chart.ErrNoData)
	assert.Equal(t, Empty, s.State())
	assert.Equal(t, Selection{X: "time", Y: "value", Kind: chart.Line}, s.Selection())
}

func TestPlotWithMissingSelectionKeepsChart(t *testing.T) {
	s := newShell()
	require.NoError(t, s.Load(writeCSV(t, "data.csv", "time,value\n1,10\n")))

	_, err := s.Plot()
	var missing *chart.MissingSelectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, Loaded, s.State())

	s.SetX("time")
	s.SetY("value")
	first, err := s.Plot()
	require.NoError(t, err)

	s.SetY("")
	_, err = s.Plot()
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, Plotted, s.State())
	assert.Same(t, first, s.Chart())
}

func TestReloadClearsSelectionAndChart(t *testing.T) {
	s := newShell()
	require.NoError(t, s.Load(writeCSV(t, "first.csv", "time,value\n1,10\n2,20\n")))
	s.SetX("time")
	s.SetY("value")
	require.NoError(t, s.SetKind(chart.Scatter))
	_, err := s.Plot()
	require.NoError(t, err)

	require.NoError(t, s.Load(writeCSV(t, "second.csv", "day,temp\n1,3\n")))

	assert.Equal(t, Loaded, s.State())
	assert.Equal(t, []string{"day", "temp"}, s.Columns())
	assert.Nil(t, s.Chart())
	assert.Equal(t, Selection{Kind: chart.Scatter}, s.Selection())
}

func TestStaleSelectionAfterReload(t *testing.T) {
	s := newShell()
	require.NoError(t, s.Load(writeCSV(t, "first.csv", "time,value\n1,10\n")))
	require.NoError(t, s.Load(writeCSV(t, "second.csv", "day,temp\n1,3\n")))

	// Selections set from widgets still showing the old column list.
	s.SetX("time")
	s.SetY("temp")

	_, err := s.Plot()

	var unknown *chart.UnknownColumnError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "time", unknown.Name)
	assert.Equal(t, Loaded, s.State())
	assert.Nil(t, s.Chart())
}

func TestFailedLoadLeavesStateUntouched(t *testing.T) {
	s := newShell()

	err := s.Load(filepath.Join(t.TempDir(), "notes.txt"))
	var unsupported *table.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, Empty, s.State())
	assert.Nil(t, s.Table())

	require.NoError(t, s.Load(writeCSV(t, "data.csv", "time,value\n1,10\n")))
	s.SetX("time")
	s.SetY("value")
	c, err := s.Plot()
	require.NoError(t, err)
	loaded := s.Table()

	err = s.Load(filepath.Join(t.TempDir(), "missing.csv"))
	var loadErr *table.LoadError
	require.ErrorAs(t, err, &loadErr)

	assert.Equal(t, Plotted, s.State())
	assert.Same(t, loaded, s.Table())
	assert.Same(t, c, s.Chart())
	assert.Equal(t, []string{"time", "value"}, s.Columns())
	assert.Equal(t, "time", s.Selection().X)
}

func TestLoadReader(t *testing.T) {
	s := newShell()

	require.NoError(t, s.LoadReader("picked.csv", strings.NewReader(",a,b\n0,1,2\n")))
	assert.Equal(t, Loaded, s.State())
	assert.Equal(t, "picked.csv", s.Table().Path)
	assert.Equal(t, []string{"Unnamed: 0", "a", "b"}, s.Columns())

	err := s.LoadReader("picked.txt", strings.NewReader("a,b\n1,2\n"))
	var unsupported *table.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "picked.csv", s.Table().Path)
}

func TestRepeatedPlotReplacesChart(t *testing.T) {
	s := newShell()
	require.NoError(t, s.Load(writeCSV(t, "data.csv", "time,value\n1,10\n2,20\n")))
	s.SetX("time")
	s.SetY("value")

	first, err := s.Plot()
	require.NoError(t, err)
	second, err := s.Plot()
	require.NoError(t, err)

	assert.Same(t, second, s.Chart())
	assert.Equal(t, first.Points, second.Points)
	assert.Equal(t, Plotted, s.State())
}

func TestColumnsReturnsCopy(t *testing.T) {
	s := newShell()
	require.NoError(t, s.Load(writeCSV(t, "data.csv", "a,b\n1,2\n")))

	cols := s.Columns()
	cols[0] = "x"

	assert.Equal(t, []string{"a", "b"}, s.Columns())
}

func TestSetKindRejectsUnknown(t *testing.T) {
	s := newShell()
	assert.Error(t, s.SetKind(chart.Kind("pie")))
	assert.Equal(t, chart.Line, s.Selection().Kind)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "plotted", Plotted.String())
	assert.Equal(t, "unknown", State(9).String())
}
