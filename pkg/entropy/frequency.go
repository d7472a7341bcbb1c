package entropy

// Frequencies counts the occurrences of each distinct label in a column.
// Labels holds the distinct labels in order of first occurrence.
type Frequencies[T comparable] struct {
	Labels []T
	Counts map[T]int
}

// LabelFrequencies tallies every distinct value in col. An empty column
// yields empty Frequencies.
func LabelFrequencies[T comparable](col []T) Frequencies[T] {
	f := Frequencies[T]{Counts: make(map[T]int)}
	for _, v := range col {
		if _, ok := f.Counts[v]; !ok {
			f.Labels = append(f.Labels, v)
		}
		f.Counts[v]++
	}
	return f
}

// Len returns the number of distinct labels.
func (f Frequencies[T]) Len() int { return len(f.Labels) }

// Total returns the sum of all counts, which equals the column length.
func (f Frequencies[T]) Total() int {
	n := 0
	for _, c := range f.Counts {
		n += c
	}
	return n
}
