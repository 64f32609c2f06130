package main

import (
	"fmt"
	"io"
	"math"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fpdump/fpdump/float754"
)

const version = "v1.0.1"

func main() {
	var verbose bool

	flagVerbose := pflag.NewFlagSet("", 0)
	flagVerbose.BoolVarP(&verbose, "verbose", "v", false, "print debug information to stderr")

	rootCmd := &cobra.Command{
		Use:   "fpdump",
		Short: "dump the bit layout of IEEE-754 sample values",
		Long:  "fpdump decodes a fixed set of float and double sample values into their sign, exponent and fraction fields and prints the result to stdout.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(log.InfoLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpSamples(os.Stdout)
		},
	}
	rootCmd.PersistentFlags().AddFlagSet(flagVerbose)

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "print fpdump version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fpdump %s\n", version)
		},
	}
	rootCmd.AddCommand(cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// dumpSamples writes the four fixed decode reports to w, separated by
// "----" divider lines. A -0.0 literal collapses to +0 under Go's
// constant rules, so negative zero comes from math.Copysign.
func dumpSamples(w io.Writer) error {
	negZero := float32(math.Copysign(0, -1))

	reports := []func(io.Writer) error{
		func(w io.Writer) error { return float754.Fprint32(w, 5.0) },
		func(w io.Writer) error { return float754.Fprint32(w, 0.1) },
		func(w io.Writer) error { return float754.Fprint64(w, 0.1) },
		func(w io.Writer) error { return float754.Fprint32(w, negZero) },
	}
	log.Debugf("dumping %d sample values", len(reports))
	for i, report := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w, "----"); err != nil {
				return err
			}
		}
		if err := report(w); err != nil {
			return err
		}
	}
	return nil
}
