// Package entropy scores categorical columns for greedy feature selection.
//
// Entropy is normalized with a logarithm whose base is the number of distinct
// labels in the column, so every value lies in [0, 1] no matter how many
// classes a column has. Information gain is the drop in target entropy once
// the target is partitioned by a feature column's distinct values.
package entropy

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch is matched by every *LengthMismatchError.
var ErrLengthMismatch = errors.New("entropy: column length mismatch")

// LengthMismatchError reports a feature and target column of different lengths.
type LengthMismatchError struct {
	Feature int
	Target  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("entropy: feature length %d does not match target length %d", e.Feature, e.Target)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// Entropy computes H = -sum p(x) * log_k(p(x)) over the labels of col, where k
// is the number of distinct labels. Columns with fewer than two distinct
// labels have entropy 0.
func Entropy[T comparable](col []T) float64 {
	return EntropyOf(LabelFrequencies(col))
}

// EntropyOf is Entropy over an already counted column.
func EntropyOf[T comparable](f Frequencies[T]) float64 {
	k := f.Len()
	if k <= 1 {
		return 0
	}
	total := float64(f.Total())
	base := math.Log(float64(k))

	h := 0.0
	for _, label := range f.Labels {
		p := float64(f.Counts[label]) / total
		h -= p * (math.Log(p) / base)
	}
	return h
}

// InformationGain returns the reduction in target entropy achieved by
// partitioning target on the distinct values of feature. Both columns must be
// the same length; two empty columns have a gain of 0.
func InformationGain[T, U comparable](feature []T, target []U) (float64, error) {
	if len(feature) != len(target) {
		return 0, &LengthMismatchError{Feature: len(feature), Target: len(target)}
	}
	base := Entropy(target)

	parts := partition(feature, target)
	weighted := make([]float64, len(parts))
	for i, p := range parts {
		// empty partitions contribute nothing
		if len(p) == 0 {
			continue
		}
		w := float64(len(p)) / float64(len(feature))
		weighted[i] = w * Entropy(p)
	}
	return base - floats.Sum(weighted), nil
}

// partition groups target values by the feature value at the same row, one
// group per distinct feature value in first-occurrence order.
func partition[T, U comparable](feature []T, target []U) [][]U {
	slot := make(map[T]int)
	var parts [][]U
	for i, v := range feature {
		j, ok := slot[v]
		if !ok {
			j = len(parts)
			slot[v] = j
			parts = append(parts, nil)
		}
		parts[j] = append(parts[j], target[i])
	}
	return parts
}
