// Package selection scores every feature column of a dataset against its
// target and picks the column a greedy tree learner would split on first.
package selection

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/Ryuk2git/infogain/pkg/data"
	"github.com/Ryuk2git/infogain/pkg/entropy"
)

// ColumnScore is the information gain of one feature column.
type ColumnScore struct {
	Index int     `json:"index" yaml:"index"`
	Name  string  `json:"name" yaml:"name"`
	Gain  float64 `json:"gain" yaml:"gain"`
}

// Report holds the gain of every feature column in input order.
type Report struct {
	Target  string        `json:"target" yaml:"target"`
	Rows    int           `json:"rows" yaml:"rows"`
	Columns []ColumnScore `json:"columns" yaml:"columns"`
	// Best is the index of the highest gain column, -1 without features.
	Best int `json:"best" yaml:"best"`
}

// Gains returns the per-column gains in input column order.
func (r *Report) Gains() []float64 {
	out := make([]float64, len(r.Columns))
	for i, c := range r.Columns {
		out[i] = c.Gain
	}
	return out
}

// Ranked returns the columns ordered by descending gain. Ties keep input order.
func (r *Report) Ranked() []ColumnScore {
	out := append([]ColumnScore(nil), r.Columns...)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Gain > out[b].Gain })
	return out
}

// Option configures Score.
type Option func(*scorer)

type scorer struct {
	workers int
	names   []string
	target  string
}

// WithWorkers bounds how many columns are scored at once. Values below 1
// mean GOMAXPROCS.
func WithWorkers(n int) Option { return func(s *scorer) { s.workers = n } }

// WithNames labels the feature columns and the target in the report.
func WithNames(features []string, target string) Option {
	return func(s *scorer) {
		s.names = features
		s.target = target
	}
}

// ScoreDataset is Score over a loaded dataset, keeping its column names.
func ScoreDataset(ctx context.Context, ds *data.Dataset, opts ...Option) (*Report, error) {
	opts = append([]Option{WithNames(ds.Names, ds.TargetName)}, opts...)
	return Score(ctx, ds.Features, ds.Target, opts...)
}

// Score computes the information gain of each feature column against target.
// Columns are scored concurrently; the first failure stops the remaining
// work and is returned with the column it came from.
func Score(ctx context.Context, features [][]string, target []string, opts ...Option) (*Report, error) {
	s := scorer{workers: runtime.GOMAXPROCS(0), target: "target"}
	for _, o := range opts {
		o(&s)
	}
	if s.workers < 1 {
		s.workers = runtime.GOMAXPROCS(0)
	}

	gains := make([]float64, len(features))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, col := range features {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			gain, err := entropy.InformationGain(col, target)
			if err != nil {
				return fmt.Errorf("column %d (%s): %w", i, s.name(i), err)
			}
			gains[i] = gain
			log.Debug().Int("column", i).Str("name", s.name(i)).Float64("gain", gain).Msg("scored column")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := &Report{
		Target:  s.target,
		Rows:    len(target),
		Columns: make([]ColumnScore, len(features)),
		Best:    -1,
	}
	for i, gain := range gains {
		r.Columns[i] = ColumnScore{Index: i, Name: s.name(i), Gain: gain}
	}
	if len(gains) > 0 {
		r.Best = floats.MaxIdx(gains)
	}
	return r, nil
}

func (s *scorer) name(i int) string {
	if i < len(s.names) {
		return s.names[i]
	}
	return fmt.Sprintf("col%d", i)
}
