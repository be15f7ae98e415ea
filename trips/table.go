package trips

import (
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
)

// Table accumulates trip records across one or more monthly CSV files.
// The zero value is an empty table ready for Append.
type Table struct {
	frame  dataframe.DataFrame
	loaded bool
}

// Load reads a trip-history CSV file into a new Table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return nil, errors.Wrapf(df.Err, "read %s", path)
	}
	return &Table{frame: df, loaded: true}, nil
}

// Append concatenates another table's rows onto t. Columns are assumed
// identical across months; no schema reconciliation is attempted.
func (t *Table) Append(other *Table) error {
	if other == nil || !other.loaded {
		return nil
	}
	if !t.loaded {
		t.frame = other.frame
		t.loaded = true
		return nil
	}
	merged := t.frame.RBind(other.frame)
	if merged.Err != nil {
		return errors.Wrap(merged.Err, "concatenate trip tables")
	}
	t.frame = merged
	return nil
}

// Rows returns the number of trip records in the table.
func (t *Table) Rows() int {
	if !t.loaded {
		return 0
	}
	return t.frame.Nrow()
}

// Empty reports whether the table holds no data at all.
func (t *Table) Empty() bool { return !t.loaded }

// Frame exposes the underlying dataframe for analysis by callers.
func (t *Table) Frame() dataframe.DataFrame { return t.frame }
