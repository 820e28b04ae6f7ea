package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tobgu/qframe"
	"github.com/xuri/excelize/v2"

	"dataplot/internal/debug/timing"
	"dataplot/internal/logger"
)

var (
	errNoHeader    = errors.New("file has no header row")
	errNoWorksheet = errors.New("workbook has no worksheets")
)

// Loader reads csv and xlsx files into Tables.
type Loader struct {
	sheet  string
	logger logger.Logger
	timing *timing.Tracker
}

// NewLoader returns a Loader. sheet picks the xlsx worksheet by name; empty
// selects the first sheet of the workbook.
func NewLoader(sheet string, log logger.Logger, tracker *timing.Tracker) *Loader {
	if log == nil {
		log = logger.NoOp{}
	}
	if tracker == nil {
		tracker = timing.NewTracker()
	}
	return &Loader{sheet: sheet, logger: log, timing: tracker}
}

// SupportedExtensions lists the extensions Load accepts, dot included.
func SupportedExtensions() []string {
	return []string{".csv", ".xlsx"}
}

func formatFor(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// Load reads the file at path. The extension is checked before the file is
// opened.
func (l *Loader) Load(path string) (*Table, error) {
	if _, err := formatFor(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return l.LoadReader(path, f)
}

// LoadReader parses r using the format implied by name's extension.
func (l *Loader) LoadReader(name string, r io.Reader) (*Table, error) {
	format, err := formatFor(name)
	if err != nil {
		return nil, err
	}

	ctx := l.timing.StartTiming("load_" + string(format))

	var frame qframe.QFrame
	switch format {
	case FormatCSV:
		frame, err = readCSV(r)
	case FormatXLSX:
		frame, err = l.readWorkbook(r)
	}

	duration := l.timing.EndTiming(ctx)

	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	t := newTable(name, format, frame)

	l.logger.Debug("Loader", "table loaded", map[string]interface{}{
		"path":     name,
		"format":   string(format),
		"rows":     t.Len(),
		"columns":  len(t.Columns()),
		"duration": duration.String(),
	})

	return t, nil
}

func readCSV(r io.Reader) (qframe.QFrame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return qframe.QFrame{}, err
	}
	if len(records) == 0 {
		return qframe.QFrame{}, errNoHeader
	}

	width := len(records[0])
	for i, record := range records[1:] {
		if len(record) > width {
			return qframe.QFrame{}, fmt.Errorf("line %d: expected %d fields, saw %d", i+2, width, len(record))
		}
	}

	return frameFromRecords(records, width)
}

func (l *Loader) readWorkbook(r io.Reader) (qframe.QFrame, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return qframe.QFrame{}, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	sheet := l.sheet
	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return qframe.QFrame{}, errNoWorksheet
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return qframe.QFrame{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return qframe.QFrame{}, errNoHeader
	}

	// Fully empty rows are skipped like blank csv lines. A data row wider
	// than the header widens the header instead of losing cells.
	records := [][]string{rows[0]}
	width := len(rows[0])
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		records = append(records, row)
		width = max(width, len(row))
	}

	if width > len(rows[0]) {
		l.logger.Warning("Loader", "sheet rows wider than header", map[string]interface{}{
			"sheet":   sheet,
			"header":  len(rows[0]),
			"columns": width,
		})
	}

	return frameFromRecords(records, width)
}

// frameFromRecords re-encodes records as csv so both formats share qframe's
// type inference. The header gets unique, non-empty names and every row is
// padded to width.
func frameFromRecords(records [][]string, width int) (qframe.QFrame, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headerNames(normalizeRow(records[0], width))); err != nil {
		return qframe.QFrame{}, err
	}
	for _, record := range records[1:] {
		if err := w.Write(normalizeRow(record, width)); err != nil {
			return qframe.QFrame{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return qframe.QFrame{}, err
	}

	frame := qframe.ReadCSV(&buf)
	if frame.Err != nil {
		return frame, frame.Err
	}
	if len(frame.ColumnNames()) == 0 {
		return frame, errNoHeader
	}
	return frame, nil
}

// headerNames names empty header cells "Unnamed: i" and suffixes repeated
// names with ".k", so "a,a" reads as a, a.1.
func headerNames(header []string) []string {
	names := make([]string, len(header))
	counts := make(map[string]int, len(header))

	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		count := counts[name]
		for count > 0 {
			counts[name] = count + 1
			name = fmt.Sprintf("%s.%d", name, count)
			count = counts[name]
		}
		names[i] = name
		counts[name] = count + 1
	}
	return names
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// normalizeRow pads row to width. excelize drops trailing empty cells and
// csv rows may be short, so short rows are common.
func normalizeRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
