// Package table loads tabular files into column-oriented frames and exposes
// their column registry and a row preview.
package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tobgu/qframe"
	"github.com/tobgu/qframe/types"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Table is an immutable, fully loaded data file.
type Table struct {
	Path   string
	Format Format
	frame  qframe.QFrame
}

func newTable(path string, format Format, frame qframe.QFrame) *Table {
	return &Table{Path: path, Format: format, frame: frame}
}

func (t *Table) Len() int {
	return t.frame.Len()
}

// Columns returns the column names in file order. The slice is freshly
// allocated on every call.
func (t *Table) Columns() []string {
	return append([]string(nil), t.frame.ColumnNames()...)
}

func (t *Table) Has(name string) bool {
	return t.frame.Contains(name)
}

// ColumnType reports the inferred type of a column.
func (t *Table) ColumnType(name string) (types.DataType, bool) {
	dt, ok := t.frame.ColumnTypeMap()[name]
	return dt, ok
}

// Columns is the column registry: the ordered names of t, or nil when nothing
// is loaded.
func Columns(t *Table) []string {
	if t == nil {
		return nil
	}
	return t.Columns()
}

// Preview renders at most n leading rows as an aligned text table with a
// row index on the left. Cells are shown in full.
func (t *Table) Preview(n int) string {
	n = max(0, min(n, t.Len()))
	names := t.Columns()

	columns := make([][]Value, len(names))
	for i, name := range names {
		values, err := t.Column(name)
		if err != nil {
			values = make([]Value, t.Len())
		}
		columns[i] = values[:n]
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := make([]string, len(names))
	for i, name := range names {
		header[i] = cellEscaper.Replace(name)
	}
	fmt.Fprintf(w, "\t%s\t\n", strings.Join(header, "\t"))
	cells := make([]string, len(names))
	for row := 0; row < n; row++ {
		for i := range columns {
			cells[i] = columns[i][row].display()
		}
		fmt.Fprintf(w, "%d\t%s\t\n", row, strings.Join(cells, "\t"))
	}
	w.Flush()

	return b.String()
}

type ValueKind int

const (
	KindNull ValueKind = iota
	KindInt
	KindFloat
	KindBool
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "null"
	}
}

// Value is a single cell as read from the file.
type Value struct {
	Kind ValueKind
	Raw  string
	num  float64
}

// Float returns the numeric value of int and float cells.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindInt, KindFloat:
		return v.num, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	return v.Raw
}

// cellEscaper keeps cell text on one tabwriter cell.
var cellEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", "")

func (v Value) display() string {
	if v.Kind == KindNull {
		return "NaN"
	}
	return cellEscaper.Replace(v.Raw)
}

// Column extracts a column's cells in row order.
func (t *Table) Column(name string) ([]Value, error) {
	dt, ok := t.ColumnType(name)
	if !ok {
		return nil, fmt.Errorf("no column named %q", name)
	}

	n := t.Len()
	values := make([]Value, n)

	switch dt {
	case types.Int:
		view, err := t.frame.IntView(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			x := view.ItemAt(i)
			values[i] = Value{Kind: KindInt, Raw: strconv.Itoa(x), num: float64(x)}
		}
	case types.Float:
		view, err := t.frame.FloatView(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			x := view.ItemAt(i)
			if math.IsNaN(x) {
				values[i] = Value{Kind: KindNull}
				continue
			}
			values[i] = Value{Kind: KindFloat, Raw: strconv.FormatFloat(x, 'g', -1, 64), num: x}
		}
	case types.Bool:
		view, err := t.frame.BoolView(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			values[i] = Value{Kind: KindBool, Raw: strconv.FormatBool(view.ItemAt(i))}
		}
	case types.String:
		view, err := t.frame.StringView(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			values[i] = stringValue(view.ItemAt(i))
		}
	case types.Enum:
		view, err := t.frame.EnumView(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			values[i] = stringValue(view.ItemAt(i))
		}
	default:
		return nil, fmt.Errorf("column %q has unsupported type %s", name, dt)
	}

	return values, nil
}

func stringValue(s *string) Value {
	if s == nil {
		return Value{Kind: KindNull}
	}
	return Value{Kind: KindString, Raw: *s}
}
