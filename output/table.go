// Package output writes the cue table as CSV or as an Excel workbook.
package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bgraf/gpxseg/route"
)

type Format int

const (
	FormatXLSX Format = iota
	FormatCSV
)

func (f Format) Extension() string {
	if f == FormatCSV {
		return ".csv"
	}
	return ".xlsx"
}

func (f Format) String() string {
	return strings.TrimPrefix(f.Extension(), ".")
}

// Header is the first row of every table.
var Header = []string{"Way Point Name", "Description", "Direction", "Segment", "Running Total"}

type Table struct {
	Title  string
	Header []string
	Rows   []route.Row
	Total  float64
}

func NewTable(title string, rows []route.Row, total float64) Table {
	return Table{
		Title:  title,
		Header: Header,
		Rows:   rows,
		Total:  total,
	}
}

// Filename derives the output path from the input path: the extension is
// replaced by the format's and "_reverse" is appended to the base name for
// reversed tracks. A non-empty dir replaces the input's directory.
func Filename(input string, reverse bool, format Format, dir string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if reverse {
		base += "_reverse"
	}

	name := base + format.Extension()
	if dir != "" {
		name = filepath.Join(dir, filepath.Base(name))
	}

	return name
}

type Writer interface {
	Write(path string, t Table) error
}

func formatMiles(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
