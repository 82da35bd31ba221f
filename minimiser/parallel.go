package minimiser

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/paguso/vmat/bus"
	"github.com/paguso/vmat/charstream"
)

// DefaultBusCapacity is the default bounded capacity of the character
// broadcast bus used by IndexSequenceParallel.
const DefaultBusCapacity = 1024

// IndexSequenceParallel indexes s the same way IndexSequence does, but
// broadcasts each character to one goroutine per configuration so that
// configurations are processed concurrently. Each worker owns its table
// shard exclusively while indexing; shards are reintegrated into idx
// once every worker has joined. busCapacity <= 0 selects
// DefaultBusCapacity.
func (idx *Index[C]) IndexSequenceParallel(ctx context.Context, s charstream.CharStream[C], busCapacity int) error {
	if busCapacity <= 0 {
		busCapacity = DefaultBusCapacity
	}
	n := len(idx.w)
	offset := idx.offs[len(idx.offs)-1]

	b := bus.New[C](n, busCapacity)
	shardTables := make([]map[uint64][]int, n)
	counts := make([]int, n)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			w, k := idx.w[i], idx.k[i]
			maxWin := w + k
			ranker := idx.rankers[i]
			table := map[uint64][]int{}
			tr := newTrackState()
			window := make([]C, 0, maxWin)
			pos := 0
			insert := func(rank uint64, relPos int) { table[rank] = append(table[rank], offset+relPos) }

			ch := b.Subscribe(i)
			// Keep draining ch after this worker returns, so that Broadcast
			// never blocks on a worker that has stopped reading; the producer
			// then sees gctx cancelled and closes the bus.
			defer func() {
				go func() {
					for range ch {
					}
				}()
			}()
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case c, ok := <-ch:
					if !ok {
						sweepEnd(tr, insert)
						shardTables[i] = table
						counts[i] = pos
						return nil
					}
					window = appendWindow(window, c, maxWin)
					pos++
					if err := advance(ranker, w, k, tr, window, pos, insert); err != nil {
						return err
					}
				}
			}
		})
	}

	var strlen int
	g.Go(func() error {
		defer b.Close()
		for {
			c, ok, err := s.Get()
			if err != nil {
				return fmt.Errorf("minimiser: %w", err)
			}
			if !ok {
				return nil
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			b.Broadcast(c)
			strlen++
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if counts[i] != strlen {
			return fmt.Errorf("minimiser: worker %d consumed %d characters, expected %d (bus lost data)", i, counts[i], strlen)
		}
	}

	for i := 0; i < n; i++ {
		for rank, positions := range shardTables[i] {
			idx.tables[i][rank] = append(idx.tables[i][rank], positions...)
		}
	}
	idx.offs = append(idx.offs, offset+strlen)
	idx.nseq++
	return nil
}
