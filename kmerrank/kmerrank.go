// Package kmerrank ranks fixed-length windows of symbols as unsigned
// integers, and supports rolling the rank forward one symbol at a time
// without rescanning the window. It is grounded on xstring.rs's
// XStrLexRanker and dna.rs's DNAHasher/XStrRollHasher.
package kmerrank

import (
	"fmt"
	"math/bits"

	"github.com/paguso/vmat/alphabet"
	"github.com/paguso/vmat/vmaterr"
)

// KmerRanker ranks k-mers over an alphabet of symbols C as base-|A|
// numerals: rank(s) = sum_i ord(s[i]) * |A|^(k-1-i).
type KmerRanker[C alphabet.Symbol] interface {
	// K is the fixed k-mer length this ranker was built for.
	K() int
	// Rank computes the rank of a k-mer from scratch. s must have length K().
	Rank(s []C) (uint64, error)
	// RollRank computes the rank of the k-mer obtained by dropping
	// oldKmer[0] and appending newChar, given oldKmer's own rank. oldKmer
	// must have length K().
	RollRank(oldKmer []C, oldRank uint64, newChar C) (uint64, error)
}

// LexKmerRanker is the base-|A| numeral ranker: the k-mer is read as a
// |A|-ary numeral over symbol ordinals, most significant symbol first.
type LexKmerRanker[C alphabet.Symbol] struct {
	ab      alphabet.Alphabet[C]
	k       int
	highPow uint64 // |A|^(k-1), the place value of the leading symbol
}

// NewLexKmerRanker builds a ranker for k-mers of length k over ab. It
// fails fast with a WidthOverflow error if k*ceil(log2(|A|)) exceeds 64
// bits, matching the construction-time check in the design this is
// grounded on.
func NewLexKmerRanker[C alphabet.Symbol](ab alphabet.Alphabet[C], k int) (*LexKmerRanker[C], error) {
	if k <= 0 {
		return nil, fmt.Errorf("kmerrank: k must be positive, got %d", k)
	}
	bitsPerSymbol := bits.Len(uint(ab.Len() - 1))
	if bitsPerSymbol == 0 {
		bitsPerSymbol = 1
	}
	if k*bitsPerSymbol > 64 {
		return nil, fmt.Errorf("kmerrank: %w (k=%d, |A|=%d)", vmaterr.ErrWidthOverflow, k, ab.Len())
	}
	highPow := uint64(1)
	for i := 0; i < k-1; i++ {
		highPow *= uint64(ab.Len())
	}
	return &LexKmerRanker[C]{ab: ab, k: k, highPow: highPow}, nil
}

func (r *LexKmerRanker[C]) K() int { return r.k }

func (r *LexKmerRanker[C]) Rank(s []C) (uint64, error) {
	if len(s) != r.k {
		return 0, fmt.Errorf("kmerrank: expected %d symbols, got %d", r.k, len(s))
	}
	var rank uint64
	for _, c := range s {
		o, ok := r.ab.Ord(c)
		if !ok {
			return 0, fmt.Errorf("kmerrank: %w: %v", vmaterr.ErrSymbolNotInAlphabet, c)
		}
		rank = rank*uint64(r.ab.Len()) + uint64(o)
	}
	return rank, nil
}

func (r *LexKmerRanker[C]) RollRank(oldKmer []C, oldRank uint64, newChar C) (uint64, error) {
	if len(oldKmer) != r.k {
		return 0, fmt.Errorf("kmerrank: expected %d symbols, got %d", r.k, len(oldKmer))
	}
	oldFirst, ok := r.ab.Ord(oldKmer[0])
	if !ok {
		return 0, fmt.Errorf("kmerrank: %w: %v", vmaterr.ErrSymbolNotInAlphabet, oldKmer[0])
	}
	newOrd, ok := r.ab.Ord(newChar)
	if !ok {
		return 0, fmt.Errorf("kmerrank: %w: %v", vmaterr.ErrSymbolNotInAlphabet, newChar)
	}
	return (oldRank-uint64(oldFirst)*r.highPow)*uint64(r.ab.Len()) + uint64(newOrd), nil
}
