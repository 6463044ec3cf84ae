package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single
// iterator sequence. Only the first value seen for each key is yielded.
func IterSeq2Concat[K comparable, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seen := make(map[K]struct{})
		for _, seq := range seqs {
			for key, val := range seq {
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				if !yield(key, val) {
					return
				}
			}
		}
	}
}
