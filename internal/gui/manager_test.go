package gui

import (
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	m, err := NewManager(w, []string{"Line", "Scatter", "Bar"}, "Line", nil)
	require.NoError(t, err)
	w.SetContent(m.GetMainContainer())
	return m
}

func TestShowTableRefreshesViews(t *testing.T) {
	m := newTestManager(t)
	m.ShowChart(image.NewRGBA(image.Rect(0, 0, 2, 2)))

	m.ShowTable("/data/a.csv", "time value", []string{"time", "value"}, 3)

	assert.Equal(t, "/data/a.csv", m.Toolbar().Path())
	assert.Equal(t, "time value", m.Preview().Text())
	assert.Equal(t, []string{"time", "value"}, m.Options().XOptions())
	assert.Zero(t, m.ChartDisplay().Count())
	assert.Equal(t, "3 rows | 2 columns", m.StatusBar().Summary())
}

func TestShowErrorOpensDialog(t *testing.T) {
	for _, title := range []string{TitleError, "Invalid File"} {
		t.Run(title, func(t *testing.T) {
			m := newTestManager(t)

			m.ShowError(title, errors.New("Unsupported file format."))

			assert.NotNil(t, m.GetWindow().Canvas().Overlays().Top())
		})
	}
}

func TestHandlersAreWrapped(t *testing.T) {
	m := newTestManager(t)
	m.Options().SetColumns([]string{"a", "b"})

	var x, y, kind string
	plotted := false
	m.SetXChangeHandler(func(s string) { x = s })
	m.SetYChangeHandler(func(s string) { y = s })
	m.SetKindChangeHandler(func(s string) { kind = s })
	m.SetPlotHandler(func() { plotted = true })

	m.Options().SelectX("b")
	m.Options().SelectY("a")
	m.Options().SelectKind("Scatter")
	test.Tap(m.Options().PlotButton)

	assert.Equal(t, "b", x)
	assert.Equal(t, "a", y)
	assert.Equal(t, "Scatter", kind)
	assert.True(t, plotted)
}

func TestShutdownIsIdempotent(t *testing.T) {
	m := newTestManager(t)
	m.Shutdown()
	m.Shutdown()
	assert.True(t, m.isShutdown)
}
