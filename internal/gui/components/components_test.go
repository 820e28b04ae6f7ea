package components

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestPlotOptionsSetColumnsReplacesOptions(t *testing.T) {
	test.NewTempApp(t)
	p := NewPlotOptions([]string{"Line", "Scatter", "Bar"}, "Line")

	var gotX []string
	p.SetXChangeHandler(func(name string) { gotX = append(gotX, name) })

	p.SetColumns([]string{"time", "value"})
	p.SelectX("value")

	p.SetColumns([]string{"day", "temp", "rain"})

	assert.Equal(t, []string{"day", "temp", "rain"}, p.XOptions())
	assert.Equal(t, []string{"day", "temp", "rain"}, p.YOptions())
	assert.Equal(t, "", p.SelectedX())
	assert.Equal(t, "", p.SelectedY())
	assert.Contains(t, gotX, "value")
	assert.Equal(t, "Line", p.SelectedKind())
}

func TestPlotOptionsCallbacksCarrySelectedValue(t *testing.T) {
	test.NewTempApp(t)
	p := NewPlotOptions([]string{"Line", "Scatter", "Bar"}, "Line")
	p.SetColumns([]string{"a", "b", "c"})

	var x, y, kind string
	plotted := 0
	p.SetXChangeHandler(func(name string) { x = name })
	p.SetYChangeHandler(func(name string) { y = name })
	p.SetKindChangeHandler(func(label string) { kind = label })
	p.SetPlotHandler(func() { plotted++ })

	p.SelectX("a")
	p.SelectY("c")
	p.SelectKind("Bar")
	test.Tap(p.PlotButton)

	assert.Equal(t, "a", x)
	assert.Equal(t, "c", y)
	assert.Equal(t, "Bar", kind)
	assert.Equal(t, 1, plotted)
}

func TestChartDisplayHoldsSingleChart(t *testing.T) {
	test.NewTempApp(t)
	cd := NewChartDisplay()
	assert.Zero(t, cd.Count())
	assert.Nil(t, cd.Image())

	first := image.NewRGBA(image.Rect(0, 0, 4, 4))
	second := image.NewRGBA(image.Rect(0, 0, 8, 8))

	cd.SetChart(first)
	cd.SetChart(second)
	cd.SetChart(second)

	assert.Equal(t, 1, cd.Count())
	assert.Same(t, second, cd.Image())

	cd.Clear()
	assert.Zero(t, cd.Count())
}

func TestToolbarBrowse(t *testing.T) {
	test.NewTempApp(t)
	tb := NewToolbar()

	browsed := false
	tb.SetBrowseHandler(func() { browsed = true })
	test.Tap(tb.BrowseButton)
	assert.True(t, browsed)

	tb.SetPath("/tmp/data.csv")
	assert.Equal(t, "/tmp/data.csv", tb.Path())
	assert.True(t, tb.PathEntry.Disabled())
}

func TestPreviewPanelText(t *testing.T) {
	test.NewTempApp(t)
	p := NewPreviewPanel()

	p.SetText("time value\n1 10")
	assert.Equal(t, "time value\n1 10", p.Text())
}

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)
	sb := NewStatusBar()

	assert.Equal(t, "Ready", sb.Status())
	sb.SetStatus("Loaded")
	sb.SetSummary(3, 2)
	assert.Equal(t, "Loaded", sb.Status())
	assert.Equal(t, "3 rows | 2 columns", sb.Summary())
}
