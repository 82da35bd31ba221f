package minimiser

import (
	"fmt"

	"github.com/paguso/vmat/alphabet"
	"github.com/paguso/vmat/kmerrank"
	"github.com/paguso/vmat/mqueue"
)

// kmerOcc is a (rank, position) pair, the monotonic queue's element type.
// Position is relative to the start of the sequence currently being
// indexed; it is offset to an absolute position only on emission.
type kmerOcc struct {
	rank uint64
	pos  int
}

// trackState is the per-configuration sliding-window state threaded
// through one pass of the scan: the monotonic queue of (rank, position)
// plus the previous window's minimiser and rightmost k-mer ranks.
type trackState struct {
	queue        *mqueue.Queue[kmerOcc]
	prevMinRank  uint64
	prevRightRnk uint64
}

func newTrackState() *trackState {
	return &trackState{
		queue: mqueue.New[kmerOcc](func(a, b kmerOcc) bool { return a.rank < b.rank }),
	}
}

// advance applies one character's worth of work to a single
// configuration's track, given the window buffer after the character
// was appended and pos = characters consumed so far in the current
// sequence (1-based). window must hold at least min(pos, w+k)
// characters, its last element being the character just appended.
// insert receives every (rank, position) this step emits, position
// relative to the start of the current sequence.
func advance[C alphabet.Symbol](r kmerrank.KmerRanker[C], w, k int, tr *trackState, window []C, pos int, insert func(rank uint64, pos int)) error {
	switch {
	case pos < k:
		return nil
	case pos == k:
		kmer := window[len(window)-k:]
		rank, err := r.Rank(kmer)
		if err != nil {
			return fmt.Errorf("minimiser: %w", err)
		}
		tr.prevRightRnk = rank
		tr.prevMinRank = rank
		tr.queue.Push(kmerOcc{rank: rank, pos: pos - k})
		insert(rank, pos-k)
		return nil
	default:
		oldKmer := window[len(window)-k-1 : len(window)-1]
		newChar := window[len(window)-1]
		rank, err := r.RollRank(oldKmer, tr.prevRightRnk, newChar)
		if err != nil {
			return fmt.Errorf("minimiser: %w", err)
		}
		kmerPos := pos - k
		tr.prevRightRnk = rank

		if pos > w+k-1 {
			tr.queue.Pop()
		}
		tr.queue.Push(kmerOcc{rank: rank, pos: kmerPos})

		curMin, _ := tr.queue.Extremum()
		switch {
		case w == 1 || tr.prevMinRank != curMin.rank:
			for _, occ := range tr.queue.ExtremumAll() {
				insert(occ.rank, occ.pos)
			}
			tr.prevMinRank = curMin.rank
		case curMin.rank == rank:
			insert(rank, kmerPos)
		}
		return nil
	}
}

// sweepEnd runs the end-of-stream end-minimiser sweep: repeatedly pop a
// shrinking suffix window's queue until it has length <= 1, emitting
// whenever the extremum changes.
func sweepEnd(tr *trackState, insert func(rank uint64, pos int)) {
	for tr.queue.Len() > 1 {
		lastMin, _ := tr.queue.Extremum()
		tr.queue.Pop()
		curMin, _ := tr.queue.Extremum()
		if lastMin.rank != curMin.rank {
			for _, occ := range tr.queue.ExtremumAll() {
				insert(occ.rank, occ.pos)
			}
		}
	}
}

// appendWindow appends c to window, capping its length at maxWin by
// dropping the leftmost character once full (ring/rotate semantics).
func appendWindow[C any](window []C, c C, maxWin int) []C {
	if len(window) >= maxWin {
		copy(window, window[1:])
		window[len(window)-1] = c
		return window
	}
	return append(window, c)
}
