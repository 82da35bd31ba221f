package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/paguso/vmat/alphabet"
	"github.com/paguso/vmat/charstream"
	"github.com/paguso/vmat/codec"
	"github.com/paguso/vmat/fasta"
	"github.com/paguso/vmat/internal/cliutil"
	"github.com/paguso/vmat/minimiser"
	"github.com/paguso/vmat/vmaterr"
)

func newCmd_Index() *cli.Command {
	return &cli.Command{
		Name:      "index",
		Usage:     "build a (w,k)-minimiser index over one or more FASTA files",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "FASTA file to index; repeat for several files",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output index path (default: <first input>.idx)",
			},
			&cli.StringFlag{
				Name:    "window",
				Aliases: []string{"w"},
				Usage:   "comma- or space-separated window sizes, one per configuration",
				Value:   "20",
			},
			&cli.StringFlag{
				Name:    "kmer",
				Aliases: []string{"k"},
				Usage:   "comma- or space-separated k-mer sizes, one per configuration",
				Value:   "10",
			},
			&cli.BoolFlag{
				Name:  "parallel",
				Usage: "index each configuration in its own goroutine",
			},
			&cli.UintFlag{
				Name:  "bus-capacity",
				Usage: "bounded channel capacity per configuration worker, when -parallel is set",
				Value: uint(minimiser.DefaultBusCapacity),
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a progress bar while scanning input",
				Value: true,
			},
		},
		Action: runIndex,
	}
}

func runIndex(c *cli.Context) error {
	klog.Infof("vmat index starting, run %s", runID)

	inputs := c.StringSlice("input")
	if len(inputs) == 0 {
		return cli.Exit(fmt.Errorf("index: no input files given"), 1)
	}

	ws, err := cliutil.ParseIntList(c.String("window"))
	if err != nil {
		return cli.Exit(fmt.Errorf("index: %w", err), 1)
	}
	ks, err := cliutil.ParseIntList(c.String("kmer"))
	if err != nil {
		return cli.Exit(fmt.Errorf("index: %w", err), 1)
	}
	if len(ws) != len(ks) {
		return cli.Exit(fmt.Errorf("index: %w: %d window sizes but %d k-mer sizes", vmaterr.ErrInvalidConfiguration, len(ws), len(ks)), 1)
	}
	cfgs := make([]minimiser.Config, len(ws))
	for i := range ws {
		cfgs[i] = minimiser.Config{W: ws[i], K: ks[i]}
	}

	ab := alphabet.NewDNAAlphabet()
	idx, err := minimiser.New(cfgs, ab)
	if err != nil {
		return cli.Exit(fmt.Errorf("index: %w", err), 1)
	}

	output := c.String("output")
	if output == "" {
		output = inputs[0] + ".idx"
	}

	parallel := c.Bool("parallel")
	busCapacity := int(c.Uint("bus-capacity"))
	showProgress := c.Bool("progress")

	var nrec int
	var nbytes int64
	for _, path := range inputs {
		n, b, err := indexFile(c, idx, path, parallel, busCapacity, showProgress)
		if err != nil {
			return cli.Exit(fmt.Errorf("index: %w", err), 2)
		}
		nrec += n
		nbytes += b
	}

	klog.Infof("indexed %s records, %s bases, across %d configuration(s)",
		humanize.Comma(int64(nrec)), humanize.Comma(nbytes), idx.NumConfigs())

	if c.Bool("vv") {
		klog.V(4).Info(spew.Sdump(idx.Configs()))
	}

	if err := codec.WriteFile(output, idx); err != nil {
		return cli.Exit(fmt.Errorf("index: %w", err), 2)
	}
	fmt.Fprintf(c.App.Writer, "wrote %s\n", output)
	return nil
}

func indexFile(c *cli.Context, idx *minimiser.Index[byte], path string, parallel bool, busCapacity int, showProgress bool) (nrec int, nbytes int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", path, err)
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.DefaultBytes(info.Size(), filepath.Base(path))
	}

	scanner := fasta.NewScanner(f)
	for {
		desc, seq, ok, err := scanner.Next()
		if err != nil {
			return nrec, nbytes, fmt.Errorf("scan %s: %w", path, err)
		}
		if !ok {
			break
		}
		stream := charstream.NewSliceStream(seq)
		if parallel {
			err = idx.IndexSequenceParallel(c.Context, stream, busCapacity)
		} else {
			err = idx.IndexSequence(stream)
		}
		if err != nil {
			return nrec, nbytes, fmt.Errorf("sequence %q: %w", strings.TrimSpace(desc), err)
		}
		nrec++
		nbytes += int64(len(seq))
		if bar != nil {
			bar.Add(len(seq))
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return nrec, nbytes, nil
}
