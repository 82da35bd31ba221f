package alphabet

import (
	"fmt"

	"github.com/paguso/vmat/vmaterr"
)

// DNA symbols, upper case. DNAAlphabet always has exactly these four.
const (
	A byte = 'A'
	C byte = 'C'
	G byte = 'G'
	T byte = 'T'
)

// DNAAlphabet is a fixed 4-symbol alphabet over upper-case DNA letters.
// New assigns A=0,C=1,G=2,T=3; NewDNAAlphabetPermutation assigns ordinals
// in whatever order the caller supplies, which is how minimiser.New runs several
// independent "hash functions" over the same configuration set (§4.1).
type DNAAlphabet struct {
	letters [4]byte
	ords    [256]int8 // -1 if not a member
}

// NewDNAAlphabet returns the canonical A,C,G,T ordinal assignment.
func NewDNAAlphabet() *DNAAlphabet {
	ab, err := NewDNAAlphabetPermutation([4]byte{A, C, G, T})
	if err != nil {
		panic(err) // unreachable: the canonical order is always a valid permutation
	}
	return ab
}

// NewDNAAlphabetPermutation builds a DNA alphabet from a permutation of
// {A,C,G,T}. It fails if letters is not a set-equal permutation.
func NewDNAAlphabetPermutation(letters [4]byte) (*DNAAlphabet, error) {
	ab := &DNAAlphabet{letters: letters}
	for i := range ab.ords {
		ab.ords[i] = -1
	}
	seen := map[byte]bool{}
	for i, l := range letters {
		if l != A && l != C && l != G && l != T {
			return nil, &vmaterr.AlphabetError{Msg: fmt.Sprintf("alphabet: %q is not a DNA letter", l)}
		}
		if seen[l] {
			return nil, &vmaterr.AlphabetError{Msg: fmt.Sprintf("alphabet: duplicate DNA letter %q", l)}
		}
		seen[l] = true
		ab.ords[l] = int8(i)
	}
	return ab, nil
}

func (ab *DNAAlphabet) Len() int { return 4 }

func (ab *DNAAlphabet) Ord(c byte) (int, bool) {
	o := ab.ords[c]
	if o < 0 {
		return 0, false
	}
	return int(o), true
}

func (ab *DNAAlphabet) Chr(ord int) (byte, bool) {
	if ord < 0 || ord >= 4 {
		return 0, false
	}
	return ab.letters[ord], true
}

// Letters returns the ordinal-indexed letter assignment, e.g. for logging.
func (ab *DNAAlphabet) Letters() [4]byte { return ab.letters }

// Permute returns a new DNAAlphabet with the ordinal assignment rotated
// left by n positions, e.g. Permute(1) on the canonical A,C,G,T order
// assigns C=0,G=1,T=2,A=3. This is the mechanism minimiser.New uses to
// build one distinct "hash function" per (w,k) configuration from a
// single starting alphabet, grounded on main.rs's index command, which
// constructs one DNAHasher per configuration and calls
// letters.rotate_left(1) between them.
func (ab *DNAAlphabet) Permute(n int) (Alphabet[byte], error) {
	n = ((n % 4) + 4) % 4
	var rotated [4]byte
	for i := range rotated {
		rotated[i] = ab.letters[(i+n)%4]
	}
	return NewDNAAlphabetPermutation(rotated)
}
