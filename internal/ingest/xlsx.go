package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"leadselector/internal/domain"
	"leadselector/internal/util"
)

// naValues are cell texts read as null, the same set pandas treats as NA by
// default when reading a sheet.
var naValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// Reader parses one workbook into a table.
type Reader interface {
	ReadFile(path string) (*domain.Table, error)
}

// XLSXReader reads the first sheet of a workbook. Row 1 is the header.
type XLSXReader struct{}

func (XLSXReader) ReadFile(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", sheets[0])
	}

	sc := &sheetCells{f: f, sheet: sheets[0], dateStyles: map[int]bool{}}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		sc.date1904 = *props.Date1904
	}
	return tableFromRows(rows, sc.cell), nil
}

// cellFunc builds the Cell for the raw value at the 0-based col and row.
type cellFunc func(col, row int, raw string) domain.Cell

// tableFromRows turns raw sheet rows into a table. Empty and NA cells are
// null and fully blank rows are skipped.
func tableFromRows(rows [][]string, cell cellFunc) *domain.Table {
	t := &domain.Table{}
	if len(rows) == 0 {
		return t
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	t.Columns = headerNames(rows[0], width)

	for n, r := range rows[1:] {
		if util.IsBlank(r) {
			continue
		}
		lead := &domain.Lead{}
		for i, col := range t.Columns {
			if i < len(r) && !naValues[r[i]] {
				lead.Set(col, cell(i, n+1, r[i]))
			}
		}
		t.Rows = append(t.Rows, lead)
	}
	return t
}

// headerNames cleans header cells, names blank ones "Unnamed: <i>" and
// suffixes repeats with ".1", ".2", ...
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	seen := map[string]int{}
	for i := range names {
		name := ""
		if i < len(header) {
			name = util.CleanText(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}

// sheetCells recovers number, date and bool cells from the worksheet so they
// are written back with their type.
type sheetCells struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func (s *sheetCells) cell(col, row int, raw string) domain.Cell {
	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return domain.Value(raw)
	}
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return domain.Value(raw)
	}
	typ, err := s.f.GetCellType(s.sheet, name)
	if err != nil {
		return domain.Value(raw)
	}

	switch typ {
	case excelize.CellTypeBool:
		return domain.Bool(raw == "1")
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if s.isDate(name) {
			if t, err := excelize.ExcelDateToTime(num, s.date1904); err == nil {
				return domain.Date(t)
			}
		}
		return domain.Number(raw)
	default:
		return domain.Value(raw)
	}
}

func (s *sheetCells) isDate(cell string) bool {
	id, err := s.f.GetCellStyle(s.sheet, cell)
	if err != nil {
		return false
	}
	if d, ok := s.dateStyles[id]; ok {
		return d
	}
	d := false
	if st, err := s.f.GetStyle(id); err == nil {
		d = isDateFormat(st.NumFmt, st.CustomNumFmt)
	}
	s.dateStyles[id] = d
	return d
}

// isDateFormat reports whether a number format displays a date or time of
// day. Built-in ids 14-22 are the default date formats, 27-36 and 50-58 the
// East Asian ones. Elapsed-time formats (45-47) stay numeric.
func isDateFormat(id int, custom *string) bool {
	if custom != nil {
		return isDateCode(*custom)
	}
	return (14 <= id && id <= 22) || (27 <= id && id <= 36) || (50 <= id && id <= 58)
}

// isDateCode looks for date or time tokens in a custom format code, ignoring
// quoted literals, escaped characters and bracketed sections.
func isDateCode(code string) bool {
	var b strings.Builder
	quoted, bracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case quoted:
			quoted = c != '"'
		case bracket:
			bracket = c != ']'
		case c == '"':
			quoted = true
		case c == '[':
			bracket = true
		case c == '\\':
			i++
		default:
			b.WriteByte(c)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ymdhs")
}
