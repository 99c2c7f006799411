package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVWriter writes every field quoted, rows terminated by CRLF.
type CSVWriter struct{}

func (CSVWriter) Write(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, t); err != nil {
		return err
	}

	return f.Close()
}

func WriteCSV(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)

	if err := writeCSVRecord(bw, t.Header); err != nil {
		return err
	}

	for _, row := range t.Rows {
		record := []string{
			row.Name,
			row.Description,
			row.Direction,
			formatMiles(row.Segment),
			formatMiles(row.RunningTotal),
		}
		if err := writeCSVRecord(bw, record); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeCSVRecord(w *bufio.Writer, record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}

	_, err := w.WriteString("\r\n")
	return err
}
