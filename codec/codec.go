// Package codec persists a minimiser.Index to disk and reloads it. It
// is not part of the core indexing engine: the core has no persistence
// logic of its own, this package builds entirely on minimiser's
// exported Configs/Tables/Restore seam. Encoding uses
// github.com/fxamacker/cbor/v2, otherwise unwired in this module.
package codec

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/paguso/vmat/alphabet"
	"github.com/paguso/vmat/minimiser"
)

// fileFormat is the on-disk CBOR document shape. TableEntry flattens the
// rank->positions map to a slice because CBOR map keys here would need
// to be uint64-as-string, which is lossier and slower to round-trip
// than an explicit entry list.
type fileFormat struct {
	Configs []minimiser.Config
	Nseq    int
	Offs    []int
	Tables  [][]tableEntry
}

type tableEntry struct {
	Rank      uint64
	Positions []int
}

// WriteFile serializes idx to path as CBOR.
func WriteFile[C alphabet.Symbol](path string, idx *minimiser.Index[C]) error {
	doc := fileFormat{
		Configs: idx.Configs(),
		Nseq:    idx.NumSequences(),
		Offs:    idx.SequenceOffsets(),
	}
	for _, table := range idx.Tables() {
		entries := make([]tableEntry, 0, len(table))
		for rank, positions := range table {
			entries = append(entries, tableEntry{Rank: rank, Positions: positions})
		}
		doc.Tables = append(doc.Tables, entries)
	}

	data, err := cbor.Marshal(doc)
	if err != nil {
		return fmt.Errorf("codec: marshal index: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}
	return nil
}

// ReadFile loads an index previously written by WriteFile, rebuilding
// it over alphabet ab. ab and the saved configuration set must match
// what produced the file; ReadFile does not itself verify this beyond
// checking the configuration count.
func ReadFile[C alphabet.Symbol](path string, ab alphabet.Alphabet[C]) (*minimiser.Index[C], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: read %s: %w", path, err)
	}
	var doc fileFormat
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: unmarshal %s: %w", path, err)
	}

	idx, err := minimiser.New[C](doc.Configs, ab)
	if err != nil {
		return nil, fmt.Errorf("codec: rebuild index: %w", err)
	}
	tables := make([]map[uint64][]int, len(doc.Tables))
	for i, entries := range doc.Tables {
		table := make(map[uint64][]int, len(entries))
		for _, e := range entries {
			table[e.Rank] = e.Positions
		}
		tables[i] = table
	}
	if err := idx.Restore(tables, doc.Offs, doc.Nseq); err != nil {
		return nil, fmt.Errorf("codec: restore index: %w", err)
	}
	return idx, nil
}
