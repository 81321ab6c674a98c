// Command evmtypes parses function signatures and decodes calldata
// arguments against them from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	evmtypes "github.com/branched-services/go-evmtypes"
)

var (
	noColor  bool
	maxDepth int
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:   "evmtypes",
		Short: "Parse EVM function signatures and decode calldata",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().IntVar(&maxDepth, "max-depth", evmtypes.DefaultMaxDepth, "recursion ceiling for nested types")

	root.AddCommand(parseCmd(), decodeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <signature>",
		Short: "Parse a signature into its type descriptors",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			params, err := evmtypes.ParseSignature(args[0], evmtypes.WithMaxDepth(maxDepth))
			if err != nil {
				logrus.WithError(err).Fatal("parse failed")
			}
			if params == nil {
				logrus.Warn("no parameters recognized")
				return
			}
			for i, p := range params {
				fmt.Printf("%d: %s\n", i, p)
			}
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <signature> <hexdata>",
		Short: "Decode ABI-encoded argument data against a signature",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			params, err := evmtypes.ParseSignature(args[0], evmtypes.WithMaxDepth(maxDepth))
			if err != nil {
				logrus.WithError(err).Fatal("parse failed")
			}
			if params == nil {
				logrus.Fatal("no parameters recognized in signature")
			}

			data, err := hexutil.Decode(args[1])
			if err != nil {
				radix := &evmtypes.RadixError{Input: args[1], Base: 16, Err: err}
				logrus.WithError(radix).Fatal("invalid hex data")
			}

			values, err := evmtypes.DecodeArguments(params, data)
			if err != nil {
				logrus.WithError(err).Fatal("decode failed")
			}

			lines, err := evmtypes.Render(values, "  ", evmtypes.WithMaxDepth(maxDepth))
			if err != nil {
				logrus.WithError(err).Fatal("render failed")
			}
			for _, line := range evmtypes.Styled(lines) {
				fmt.Println(line)
			}
		},
	}
}
