// Package alphabet defines finite ordered symbol sets used to rank k-mers.
//
// An Alphabet fixes a dense ordinal assignment over a set of symbols; the
// bijection between symbols and ordinals is what the rest of the indexing
// pipeline (kmerrank, minimiser) builds its numeral-system ranks on top of.
package alphabet

import (
	"fmt"

	"github.com/paguso/vmat/vmaterr"
)

// Symbol constrains the character type an Alphabet can be built over.
type Symbol interface {
	comparable
}

// Alphabet maps symbols of type C to dense ordinals in [0, Len()).
type Alphabet[C Symbol] interface {
	Len() int
	Ord(c C) (int, bool)
	Chr(ord int) (C, bool)
}

// Permutable is implemented by alphabets that can derive a companion
// alphabet under a different ordinal assignment over the same symbol
// set. minimiser.New uses this to build one distinct "hash function" per
// (w,k) configuration from a single starting alphabet (see
// DNAAlphabet.Permute).
type Permutable[C Symbol] interface {
	Alphabet[C]
	Permute(n int) (Alphabet[C], error)
}

// HashAlphabet is a generic, map-backed Alphabet for any comparable symbol
// type, built from an ordered, distinct list of symbols.
type HashAlphabet[C Symbol] struct {
	chrs []C
	ords map[C]int
}

// NewHashAlphabet builds an alphabet assigning ordinals in the order the
// symbols are given. It returns an error if any symbol repeats.
func NewHashAlphabet[C Symbol](chrs []C) (*HashAlphabet[C], error) {
	ords := make(map[C]int, len(chrs))
	for i, c := range chrs {
		if _, dup := ords[c]; dup {
			return nil, &vmaterr.AlphabetError{Msg: fmt.Sprintf("alphabet: duplicate symbol %v at position %d", c, i)}
		}
		ords[c] = i
	}
	cp := make([]C, len(chrs))
	copy(cp, chrs)
	return &HashAlphabet[C]{chrs: cp, ords: ords}, nil
}

func (a *HashAlphabet[C]) Len() int { return len(a.chrs) }

func (a *HashAlphabet[C]) Ord(c C) (int, bool) {
	o, ok := a.ords[c]
	return o, ok
}

func (a *HashAlphabet[C]) Chr(ord int) (C, bool) {
	var zero C
	if ord < 0 || ord >= len(a.chrs) {
		return zero, false
	}
	return a.chrs[ord], true
}
