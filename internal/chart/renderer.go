package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"dataplot/internal/debug/timing"
	"dataplot/internal/logger"
	"dataplot/internal/table"
)

var (
	seriesColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	barWidth    = vg.Points(20)
	errNoRows   = errors.New("table has no rows to plot")
)

type Renderer struct {
	width  vg.Length
	height vg.Length
	logger logger.Logger
	timing *timing.Tracker
}

// NewRenderer returns a Renderer producing images of the given size in inches.
func NewRenderer(widthInches, heightInches float64, log logger.Logger, tracker *timing.Tracker) *Renderer {
	if log == nil {
		log = logger.NoOp{}
	}
	if tracker == nil {
		tracker = timing.NewTracker()
	}
	return &Renderer{
		width:  vg.Length(widthInches) * vg.Inch,
		height: vg.Length(heightInches) * vg.Inch,
		logger: log,
		timing: tracker,
	}
}

// Render plots column y against column x of t. Values are used exactly as
// loaded: no sorting, aggregation or coercion. A non-numeric x column is
// drawn on a nominal axis in row order.
func (r *Renderer) Render(t *table.Table, x, y string, kind Kind) (*Chart, error) {
	if err := Validate(t, x, y); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, &RenderError{Err: fmt.Errorf("unknown plot kind %q", kind)}
	}

	ctx := r.timing.StartTiming("render_" + string(kind))
	c, err := r.build(t, x, y, kind)
	duration := r.timing.EndTiming(ctx)
	if err != nil {
		return nil, &RenderError{Err: err}
	}

	r.logger.Debug("Renderer", "chart rendered", map[string]interface{}{
		"kind":     string(kind),
		"x":        x,
		"y":        y,
		"rows":     t.Len(),
		"duration": duration.String(),
	})

	return c, nil
}

// Validate checks the plot preconditions in order: data present, both axes
// selected, both names present in the table's columns.
func Validate(t *table.Table, x, y string) error {
	if t == nil {
		return ErrNoData
	}
	if x == "" {
		return &MissingSelectionError{Axis: "x"}
	}
	if y == "" {
		return &MissingSelectionError{Axis: "y"}
	}
	if !hasColumn(t, x) {
		return &UnknownColumnError{Axis: "x", Name: x}
	}
	if !hasColumn(t, y) {
		return &UnknownColumnError{Axis: "y", Name: y}
	}
	return nil
}

func hasColumn(t *table.Table, name string) bool {
	for _, c := range table.Columns(t) {
		if c == name {
			return true
		}
	}
	return false
}

func (r *Renderer) build(t *table.Table, x, y string, kind Kind) (*Chart, error) {
	if t.Len() == 0 {
		return nil, errNoRows
	}

	xs, err := t.Column(x)
	if err != nil {
		return nil, err
	}
	ys, err := t.Column(y)
	if err != nil {
		return nil, err
	}

	heights, err := numeric(y, ys)
	if err != nil {
		return nil, err
	}

	c := &Chart{
		Kind:   kind,
		Title:  Title,
		XLabel: x,
		YLabel: y,
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	switch kind {
	case Line, Scatter:
		c.Points, c.Nominal = points(xs, heights)
		pts := make(plotter.XYs, len(c.Points))
		labels := make([]string, len(c.Points))
		for i, pt := range c.Points {
			pts[i].X = pt.X
			pts[i].Y = pt.Y
			labels[i] = pt.Label
		}
		if err := addXY(p, kind, pts); err != nil {
			return nil, err
		}
		if c.Nominal {
			p.NominalX(labels...)
		}

	case Bar:
		c.Bars, c.Nominal = bars(xs, heights)
		if err := addBars(p, c.Bars, c.Nominal); err != nil {
			return nil, err
		}
	}

	c.Image = r.rasterize(p)
	return c, nil
}

func numeric(column string, values []table.Value) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, ok := v.Float()
		if !ok {
			return nil, &NonNumericError{Column: column, Row: i, Raw: v.Raw}
		}
		out[i] = f
	}
	return out, nil
}

// positions returns x itself when every value is numeric, otherwise the row
// indexes, reporting whether the axis is nominal.
func positions(xs []table.Value) ([]float64, bool) {
	out := make([]float64, len(xs))
	for i, v := range xs {
		f, ok := v.Float()
		if !ok {
			for j := range out {
				out[j] = float64(j)
			}
			return out, true
		}
		out[i] = f
	}
	return out, false
}

func points(xs []table.Value, heights []float64) ([]Point, bool) {
	pos, nominal := positions(xs)
	out := make([]Point, len(xs))
	for i, v := range xs {
		out[i] = Point{X: pos[i], Y: heights[i], Label: v.Raw}
	}
	return out, nominal
}

func bars(xs []table.Value, heights []float64) ([]Bar, bool) {
	pos, nominal := positions(xs)
	out := make([]Bar, len(xs))
	for i, v := range xs {
		out[i] = Bar{Position: pos[i], Label: v.Raw, Height: heights[i]}
	}
	return out, nominal
}

func addXY(p *plot.Plot, kind Kind, pts plotter.XYs) error {
	if kind == Line {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Color = seriesColor
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		return nil
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = seriesColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	return nil
}

func addBars(p *plot.Plot, bs []Bar, nominal bool) error {
	if nominal {
		values := make(plotter.Values, len(bs))
		labels := make([]string, len(bs))
		for i, b := range bs {
			values[i] = b.Height
			labels[i] = b.Label
		}
		chart, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return err
		}
		chart.Color = seriesColor
		p.Add(chart)
		p.NominalX(labels...)
		return nil
	}

	// One single-value bar chart per row so each bar sits at its own x.
	for _, b := range bs {
		chart, err := plotter.NewBarChart(plotter.Values{b.Height}, barWidth)
		if err != nil {
			return err
		}
		chart.XMin = b.Position
		chart.Color = seriesColor
		p.Add(chart)
	}
	return nil
}

func (r *Renderer) rasterize(p *plot.Plot) image.Image {
	canvas := vgimg.New(r.width, r.height)
	p.Draw(draw.New(canvas))
	return canvas.Image()
}
