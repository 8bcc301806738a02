package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lone-faerie/tempconv/temperature"
)

// NewCmdUnits returns the [cobra.Command] used for listing the supported units.
//
// If --summary is specified, the list will be a comma-separated list of unit
// letters. Otherwise, each unit is printed with its name and absolute zero.
//
// Usage:
//
//	tempconv units [flags]
//
// Aliases:
//
//	units, u
//
// Flags:
//
//	-s, --summary   Display a summary of supported units
//	-h, --help      help for units
func NewCmdUnits() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:     "units",
		Aliases: []string{"u"},
		Short:   "List supported temperature units",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if summary {
				return printSummary(cmd.OutOrStdout())
			}
			return printUnits(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "Display a summary of supported units")

	return cmd
}

func printUnits(w io.Writer) error {
	absoluteZero := temperature.New(decimal.Zero, temperature.Kelvin)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tSCALE\tABSOLUTE ZERO")
	for _, s := range temperature.Scales() {
		fmt.Fprintf(tw, "%c\t%s\t%s\n", s.Symbol(), s, absoluteZero.ConvertTo(s))
	}
	return tw.Flush()
}

func printSummary(w io.Writer) error {
	scales := temperature.Scales()
	symbols := make([]string, len(scales))
	for i, s := range scales {
		symbols[i] = string(s.Symbol())
	}
	_, err := io.WriteString(w, strings.Join(symbols, ", ")+"\n")
	return err
}
