package rank

import (
	"sort"

	"leadselector/internal/domain"
)

// ScoreAll applies s to every row of t.
func ScoreAll(t *domain.Table, s Scorer) {
	for _, r := range t.Rows {
		s.Score(r)
	}
}

// Top orders rows by TotalScore, highest first, and keeps the first n.
// Equal scores keep their merged order. The input slice is not modified.
func Top(rows []*domain.Lead, n int) []*domain.Lead {
	out := make([]*domain.Lead, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalScore > out[j].TotalScore
	})

	if n < len(out) {
		out = out[:max(n, 0)]
	}
	return out
}

// TopTable is Top applied to a table; columns are shared with t.
func TopTable(t *domain.Table, n int) *domain.Table {
	return &domain.Table{Columns: t.Columns, Rows: Top(t.Rows, n)}
}
