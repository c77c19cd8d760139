package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"

	"leadselector/internal/domain"
)

const maxPreviewWidth = 40

// PreviewColumns keeps the wanted columns that the exported table actually
// has, in wanted order.
func PreviewColumns(t *domain.Table, wanted []string) []string {
	header := Header(t)
	return lo.Filter(wanted, func(c string, _ int) bool {
		return lo.Contains(header, c)
	})
}

// Preview prints the first n rows of t restricted to cols as an aligned
// table. Columns t does not have are left out.
func Preview(w io.Writer, t *domain.Table, n int, cols []string) error {
	cols = PreviewColumns(t, cols)
	rows := t.Rows[:max(0, min(n, len(t.Rows)))]

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\t"+strings.Join(cols, "\t"))
	for i, lead := range rows {
		cells := lo.Map(cols, func(c string, _ int) string {
			return previewValue(lead, c)
		})
		fmt.Fprintf(tw, "%d\t%s\n", i+1, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func previewValue(lead *domain.Lead, col string) string {
	if v, ok := lead.Derived(col); ok {
		if col == domain.ColTotalScore {
			return strconv.FormatFloat(v, 'f', 1, 64)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	c := lead.Get(col)
	if c.IsNull() {
		return "NaN"
	}
	s := strings.Join(strings.Fields(c.Value), " ")
	if r := []rune(s); len(r) > maxPreviewWidth {
		s = string(r[:maxPreviewWidth-3]) + "..."
	}
	return s
}
