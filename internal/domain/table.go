package domain

import "github.com/samber/lo"

// Table is the merged lead set. Columns lists input columns in first-seen
// order; derived columns are not part of it.
type Table struct {
	Columns []string
	Rows    []*Lead
}

func (t *Table) HasColumn(col string) bool {
	return lo.Contains(t.Columns, col)
}

// AddColumn appends col if it is not already present. Rows are left as is,
// so existing leads read the new column as null.
func (t *Table) AddColumn(col string) bool {
	if t.HasColumn(col) {
		return false
	}
	t.Columns = append(t.Columns, col)
	return true
}

// Append merges other into t: columns are unioned, rows concatenated.
func (t *Table) Append(other *Table) {
	for _, c := range other.Columns {
		t.AddColumn(c)
	}
	t.Rows = append(t.Rows, other.Rows...)
}

// Restrict keeps only the columns listed in keep, in keep's order, and clears
// dropped values from every row.
func (t *Table) Restrict(keep []string) {
	dropped := lo.Without(t.Columns, keep...)
	t.Columns = lo.Filter(keep, func(c string, _ int) bool { return t.HasColumn(c) })
	for _, r := range t.Rows {
		for _, c := range dropped {
			r.Drop(c)
		}
	}
}

func (t *Table) Len() int { return len(t.Rows) }
