// Package minimiser implements the streaming (w,k)-minimiser indexer: a
// single-pass sliding-window scan that, for several (w,k) configurations
// at once, finds the minimum-rank k-mer(s) of every window and records
// their absolute positions in an inverted table per configuration.
//
// Grounded 1:1 on minimiser.rs's MmIndex/index/index_par.
package minimiser

import (
	"fmt"

	"github.com/paguso/vmat/alphabet"
	"github.com/paguso/vmat/charstream"
	"github.com/paguso/vmat/kmerrank"
	"github.com/paguso/vmat/vmaterr"
)

// Index is an inverted index of (w,k)-minimisers over m configurations,
// built incrementally by IndexSequence/IndexSequenceParallel calls.
type Index[C alphabet.Symbol] struct {
	w       []int
	k       []int
	rankers []kmerrank.KmerRanker[C]
	tables  []map[uint64][]int
	nseq    int
	offs    []int
	maxWin  int
}

// Config is one (w,k) pair; index i in a configuration set is one
// independently tracked minimiser specification.
type Config struct {
	W int
	K int
}

// New builds an index for the given configurations. If ab implements
// alphabet.Permutable, configuration i is ranked under ab.Permute(i)
// rather than ab itself, so each configuration runs an independently
// ordered "hash function" over the same symbol set (spec.md §3/§4.1);
// otherwise every configuration shares ab unchanged. It fails fast on
// w=0, k=0, an empty configuration set, or a k that overflows a 64-bit
// rank for |ab|.
func New[C alphabet.Symbol](cfgs []Config, ab alphabet.Alphabet[C]) (*Index[C], error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("minimiser: %w: no configurations given", vmaterr.ErrInvalidConfiguration)
	}
	pab, permutable := ab.(alphabet.Permutable[C])
	idx := &Index[C]{
		w:    make([]int, len(cfgs)),
		k:    make([]int, len(cfgs)),
		offs: []int{0},
	}
	for i, c := range cfgs {
		if c.W <= 0 {
			return nil, &vmaterr.ConfigError{Index: i, Msg: "w must be positive"}
		}
		if c.K <= 0 {
			return nil, &vmaterr.ConfigError{Index: i, Msg: "k must be positive"}
		}
		cfgAb := ab
		if permutable {
			rotated, err := pab.Permute(i)
			if err != nil {
				return nil, fmt.Errorf("minimiser: configuration %d: %w", i, err)
			}
			cfgAb = rotated
		}
		r, err := kmerrank.NewLexKmerRanker[C](cfgAb, c.K)
		if err != nil {
			return nil, fmt.Errorf("minimiser: configuration %d: %w", i, err)
		}
		idx.w[i] = c.W
		idx.k[i] = c.K
		idx.rankers = append(idx.rankers, r)
		idx.tables = append(idx.tables, map[uint64][]int{})
		if win := c.W + c.K; win > idx.maxWin {
			idx.maxWin = win
		}
	}
	return idx, nil
}

func (idx *Index[C]) insert(cfg int, rank uint64, pos int) {
	idx.tables[cfg][rank] = append(idx.tables[cfg][rank], pos)
}

// GetAbsolute returns the absolute positions recorded for the given
// configuration and rank, or (nil, false) if none were recorded.
func (idx *Index[C]) GetAbsolute(cfg int, rank uint64) ([]int, bool) {
	v, ok := idx.tables[cfg][rank]
	return v, ok
}

// NumConfigs returns the number of (w,k) configurations this index tracks.
func (idx *Index[C]) NumConfigs() int { return len(idx.w) }

// NumSequences returns how many calls to IndexSequence/IndexSequenceParallel
// have completed.
func (idx *Index[C]) NumSequences() int { return idx.nseq }

// SequenceOffsets returns the offset registry: offs[0]==0, and
// offs[i+1]-offs[i] is the length of the i-th indexed sequence.
func (idx *Index[C]) SequenceOffsets() []int {
	out := make([]int, len(idx.offs))
	copy(out, idx.offs)
	return out
}

// Configs returns the (w,k) configuration set this index was built with.
func (idx *Index[C]) Configs() []Config {
	out := make([]Config, len(idx.w))
	for i := range out {
		out[i] = Config{W: idx.w[i], K: idx.k[i]}
	}
	return out
}

// Tables returns a copy of every configuration's rank->positions table,
// for serialization. The core package has no persistence logic of its
// own; this is the seam an external codec builds on.
func (idx *Index[C]) Tables() []map[uint64][]int {
	out := make([]map[uint64][]int, len(idx.tables))
	for i, t := range idx.tables {
		cp := make(map[uint64][]int, len(t))
		for rank, positions := range t {
			cp[rank] = append([]int(nil), positions...)
		}
		out[i] = cp
	}
	return out
}

// Restore rebuilds an index's tables and sequence registry from
// previously-saved state, for an external codec to reconstruct an Index
// built with New against the same configurations and alphabet. It
// replaces any tables already accumulated.
func (idx *Index[C]) Restore(tables []map[uint64][]int, offs []int, nseq int) error {
	if len(tables) != len(idx.tables) {
		return fmt.Errorf("minimiser: %w: expected %d configuration tables, got %d", vmaterr.ErrInvalidConfiguration, len(idx.tables), len(tables))
	}
	idx.tables = tables
	idx.offs = append([]int(nil), offs...)
	idx.nseq = nseq
	return nil
}

// IndexSequence reads s to completion and indexes it as one sequence,
// appending to every configuration's table and to the offset registry.
func (idx *Index[C]) IndexSequence(s charstream.CharStream[C]) error {
	n := len(idx.w)
	offset := idx.offs[len(idx.offs)-1]

	window := make([]C, 0, idx.maxWin)
	tracks := make([]*trackState, n)
	for i := range tracks {
		tracks[i] = newTrackState()
	}

	pos := 0
	for {
		c, ok, err := s.Get()
		if err != nil {
			return fmt.Errorf("minimiser: %w", err)
		}
		if !ok {
			break
		}
		window = appendWindow(window, c, idx.maxWin)
		pos++

		for i := 0; i < n; i++ {
			cfg := i
			err := advance(idx.rankers[i], idx.w[i], idx.k[i], tracks[i], window, pos,
				func(rank uint64, relPos int) { idx.insert(cfg, rank, offset+relPos) })
			if err != nil {
				return err
			}
		}
	}

	for i := 0; i < n; i++ {
		cfg := i
		sweepEnd(tracks[i], func(rank uint64, relPos int) { idx.insert(cfg, rank, offset+relPos) })
	}
	idx.offs = append(idx.offs, offset+pos)
	idx.nseq++
	return nil
}
