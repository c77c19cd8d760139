package export

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"leadselector/internal/domain"
)

const SheetName = "Sheet1"

// ErrOutputLocked means another run is writing the same output file.
var ErrOutputLocked = errors.New("output file is locked by another run")

// Header returns the exported header: input columns then derived columns.
// An input column named like a derived one keeps its position and carries
// the derived value.
func Header(t *domain.Table) []string {
	return lo.Union(t.Columns, domain.DerivedColumns)
}

// Write stores t as a single-sheet workbook at path, replacing any existing
// file. Null cells stay empty; numbers, dates and booleans keep their type.
// The file is written to a temp file next to path and renamed into place
// while holding <path>.lock. The lock file is never removed, so every run
// locks the same inode.
func Write(path string, t *domain.Table) error {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return errors.Wrap(err, "lock output")
	}
	if !ok {
		return errors.Wrap(ErrOutputLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	f := excelize.NewFile()
	defer f.Close()

	if err := fill(f, t); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".leadselector-*.xlsx")
	if err != nil {
		return errors.Wrap(err, "create temp output")
	}
	defer os.Remove(tmp.Name())

	if err := f.Write(tmp); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write workbook")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp output")
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(err, "chmod output")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "replace output")
}

func fill(f *excelize.File, t *domain.Table) error {
	header := Header(t)
	for i, col := range header {
		if err := setCell(f, i+1, 1, col); err != nil {
			return err
		}
	}

	for r, lead := range t.Rows {
		row := r + 2
		for i, col := range header {
			if v, ok := lead.Derived(col); ok {
				if err := setCell(f, i+1, row, v); err != nil {
					return err
				}
				continue
			}
			c := lead.Get(col)
			if c.IsNull() {
				continue
			}
			if err := setCell(f, i+1, row, c.Typed()); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.Wrap(err, "cell name")
	}
	return errors.Wrapf(f.SetCellValue(SheetName, cell, v), "set %s", cell)
}
