package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"leadselector/internal/domain"
)

// ErrNoInputData means no workbook could be loaded. The pipeline cannot
// continue without rows.
var ErrNoInputData = errors.New("no input data")

type Loader struct {
	Reader Reader
	Log    *zap.Logger
	Out    io.Writer
}

func NewLoader(log *zap.Logger, out io.Writer) *Loader {
	return &Loader{Reader: XLSXReader{}, Log: log, Out: out}
}

// Discover lists the files in dir (not recursive) matching pattern, in
// lexical order. Directories and Office lock files (~$...) are skipped.
func Discover(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Wrapf(err, "bad pattern %q", pattern)
	}

	var out []string
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), "~$") {
			continue
		}
		st, err := os.Stat(m)
		if err != nil || st.IsDir() {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Load reads every workbook found in dir and concatenates them. A workbook
// that fails to parse is reported and skipped; ErrNoInputData is returned
// when nothing could be loaded.
func (l *Loader) Load(dir, pattern string) (*domain.Table, error) {
	files, err := Discover(dir, pattern)
	if err != nil {
		return nil, err
	}
	l.Log.Debug("discovered input files", zap.String("dir", dir), zap.Int("files", len(files)))

	merged := &domain.Table{}
	loaded := 0
	for _, path := range files {
		name := filepath.Base(path)

		t, err := l.Reader.ReadFile(path)
		if err != nil {
			l.Log.Warn("skipping unreadable workbook", zap.String("file", name), zap.Error(err))
			fmt.Fprintf(l.Out, "❌ Error reading %s: %v\n", path, err)
			continue
		}

		t.AddColumn(domain.ColSourceFile)
		for _, r := range t.Rows {
			r.SourceFile = domain.Value(name)
		}
		merged.Append(t)
		loaded++

		l.Log.Debug("loaded workbook", zap.String("file", name), zap.Int("rows", t.Len()), zap.Int("columns", len(t.Columns)))
		fmt.Fprintf(l.Out, "Loaded: %s (%d rows)\n", path, t.Len())
	}

	if loaded == 0 {
		return nil, errors.Wrapf(ErrNoInputData, "no readable %s files in %s", pattern, dir)
	}

	fmt.Fprintf(l.Out, "\n✅ Merged %d files with %d total rows.\n\n", loaded, merged.Len())
	return merged, nil
}
