// Package cliutil holds small parsing helpers shared by the vmat
// command-line flags, kept out of cmd/vmat so they can be unit tested
// without urfave/cli in the loop.
package cliutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntList parses a comma- and/or whitespace-separated list of
// integers, as accepted by the -w and -k flags. It does not check the
// sign of the values; zero and negative sizes are accepted here.
func ParseIntList(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("cliutil: empty integer list")
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("cliutil: invalid integer %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}
