package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// WriteWorkbook writes one sheet per figure to path. Each series occupies a
// block of adjacent columns: its labels, X values, Y values, and sizes,
// whichever it carries.
func WriteWorkbook(figs []Figure, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, fig := range figs {
		name := sheetName(fig.Name, seen)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
		if err := writeFigure(f, name, fig, bold); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
	}
	if len(figs) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
		f.SetActiveSheet(0)
	}
	return f.SaveAs(path)
}

func writeFigure(f *excelize.File, sheet string, fig Figure, style int) error {
	if err := f.SetCellValue(sheet, "A1", fig.Title); err != nil {
		return err
	}
	xLabel, yLabel := fig.XLabel, fig.YLabel
	if fig.Kind == KindHBar {
		// values run along the X axis
		xLabel, yLabel = yLabel, xLabel
	}
	col := 1
	for _, s := range fig.Series {
		var cols []column
		if len(s.Labels) > 0 {
			cols = append(cols, column{header: seriesHeader(s, "label"), strs: s.Labels})
		}
		if len(s.X) > 0 {
			cols = append(cols, column{header: seriesHeader(s, orDefault(xLabel, "x")), nums: s.X})
		}
		if len(s.Y) > 0 {
			cols = append(cols, column{header: seriesHeader(s, orDefault(yLabel, "value")), nums: s.Y})
		}
		if len(s.Size) > 0 {
			cols = append(cols, column{header: seriesHeader(s, "size"), nums: s.Size})
		}
		for _, c := range cols {
			if err := c.write(f, sheet, col, style); err != nil {
				return err
			}
			col++
		}
	}
	if col > 1 {
		last, err := excelize.ColumnNumberToName(col - 1)
		if err != nil {
			return err
		}
		return f.SetColWidth(sheet, "A", last, 22)
	}
	return nil
}

type column struct {
	header string
	strs   []string
	nums   []float64
}

// write puts the header on row 2 and the values below it.
func (c column) write(f *excelize.File, sheet string, col, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, 2)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, c.header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return err
	}
	n := max(len(c.strs), len(c.nums))
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(col, i+3)
		if err != nil {
			return err
		}
		var v any
		if c.strs != nil {
			v = c.strs[i]
		} else {
			v = c.nums[i]
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func seriesHeader(s Series, what string) string {
	if s.Name == "" {
		return what
	}
	return s.Name + ": " + what
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// sheetName truncates name to the XLSX limit and disambiguates repeats.
func sheetName(name string, seen map[string]bool) string {
	base := name
	if base == "" {
		base = "chart"
	}
	if len(base) > maxSheetName {
		base = base[:maxSheetName]
	}
	out := base
	for i := 2; seen[out]; i++ {
		suffix := fmt.Sprintf("_%d", i)
		cut := min(len(base), maxSheetName-len(suffix))
		out = base[:cut] + suffix
	}
	seen[out] = true
	return out
}
