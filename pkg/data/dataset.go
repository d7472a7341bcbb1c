package data

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the source holds no records at all.
	ErrEmptyInput = errors.New("data: empty input")
	// ErrTargetIndex is returned when the target column index is out of range.
	ErrTargetIndex = errors.New("data: target index out of range")
	// ErrRaggedColumns is returned when columns differ in length.
	ErrRaggedColumns = errors.New("data: columns differ in length")
)

// Dataset is a column-major table split into feature columns and a single
// target column. All columns have the same length.
type Dataset struct {
	Names      []string   // feature column names, aligned with Features
	Features   [][]string // feature columns in source order
	TargetName string
	Target     []string
}

// NewDataset splits columns into features and the target at targetIndex.
// names may be nil, in which case columns are named by position.
func NewDataset(columns [][]string, names []string, targetIndex int) (*Dataset, error) {
	if targetIndex < 0 || targetIndex >= len(columns) {
		return nil, fmt.Errorf("%w: index %d, %d columns", ErrTargetIndex, targetIndex, len(columns))
	}
	if names == nil {
		names = positionalNames(len(columns))
	}
	if len(names) != len(columns) {
		return nil, fmt.Errorf("data: %d names for %d columns", len(names), len(columns))
	}

	d := &Dataset{
		Names:      make([]string, 0, len(columns)-1),
		Features:   make([][]string, 0, len(columns)-1),
		TargetName: names[targetIndex],
		Target:     columns[targetIndex],
	}
	for i, col := range columns {
		if i == targetIndex {
			continue
		}
		d.Names = append(d.Names, names[i])
		d.Features = append(d.Features, col)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Rows returns the number of records in the dataset.
func (d *Dataset) Rows() int { return len(d.Target) }

// Validate checks that every feature column matches the target length.
func (d *Dataset) Validate() error {
	for i, col := range d.Features {
		if len(col) != len(d.Target) {
			return fmt.Errorf("%w: column %q has %d rows, target %q has %d",
				ErrRaggedColumns, d.Names[i], len(col), d.TargetName, len(d.Target))
		}
	}
	return nil
}

func positionalNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("col%d", i)
	}
	return names
}
