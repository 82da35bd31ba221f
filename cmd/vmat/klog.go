package main

import (
	"flag"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

var klogFlagSet = func() *flag.FlagSet {
	fs := flag.NewFlagSet("klog", flag.PanicOnError)
	klog.InitFlags(fs)
	fs.Set("logtostderr", "true")
	return fs
}()

// FlagVerbose and FlagVeryVerbose are convenience wrappers over klog's -v,
// for users who don't want to remember klog's own verbosity scale.
var FlagVerbose = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "enable informational logging (equivalent to -v=2)",
	Action: func(cctx *cli.Context, v bool) error {
		if v {
			klogFlagSet.Set("v", "2")
		}
		return nil
	},
}

var FlagVeryVerbose = &cli.BoolFlag{
	Name:  "vv",
	Usage: "enable debug logging (equivalent to -v=4)",
	Action: func(cctx *cli.Context, v bool) error {
		if v {
			klogFlagSet.Set("v", "4")
		}
		return nil
	},
}
