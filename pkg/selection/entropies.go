package selection

import (
	"github.com/Ryuk2git/infogain/pkg/data"
	"github.com/Ryuk2git/infogain/pkg/entropy"
)

// ColumnEntropy is the normalized entropy of one column.
type ColumnEntropy struct {
	Name    string  `json:"name" yaml:"name"`
	Labels  int     `json:"labels" yaml:"labels"`
	Entropy float64 `json:"entropy" yaml:"entropy"`
	Target  bool    `json:"target,omitempty" yaml:"target,omitempty"`
}

// Entropies returns the entropy of every feature column followed by the target.
func Entropies(ds *data.Dataset) []ColumnEntropy {
	out := make([]ColumnEntropy, 0, len(ds.Features)+1)
	for i, col := range ds.Features {
		out = append(out, columnEntropy(ds.Names[i], col, false))
	}
	return append(out, columnEntropy(ds.TargetName, ds.Target, true))
}

func columnEntropy(name string, col []string, target bool) ColumnEntropy {
	f := entropy.LabelFrequencies(col)
	return ColumnEntropy{
		Name:    name,
		Labels:  f.Len(),
		Entropy: entropy.EntropyOf(f),
		Target:  target,
	}
}
