package collector

import (
	"iter"

	"go.trai.ch/strref"
	"go.trai.ch/strref/internal/core/domain"
)

// Tally holds the distinct lines of a collection run and how often each occurred.
type Tally struct {
	// Files holds one summary per input, in input order.
	Files []domain.FileSummary
	// Lines is the number of counted lines across all files.
	Lines int

	table  strref.Table
	counts []int
}

func (t *Tally) merge(p *partial) {
	t.Lines += p.lines
	for i, s := range p.table.All() {
		j := t.table.Add(s)
		if j == len(t.counts) {
			t.counts = append(t.counts, 0)
		}
		t.counts[j] += p.counts[i]
	}
}

// Distinct returns the number of distinct lines.
func (t *Tally) Distinct() int {
	return t.table.Len()
}

// Count returns how often line occurred.
func (t *Tally) Count(line strref.StrRef) int {
	i, ok := t.table.Index(line)
	if !ok {
		return 0
	}
	return t.counts[i]
}

// All iterates over the distinct lines in first seen order with their counts.
// The yielded values are borrowed from the tally.
func (t *Tally) All() iter.Seq2[strref.Str, int] {
	return func(yield func(strref.Str, int) bool) {
		for i, s := range t.table.All() {
			if !yield(s, t.counts[i]) {
				return
			}
		}
	}
}

// Release releases every stored line.
func (t *Tally) Release() {
	t.table.Release()
	t.counts = nil
}
