package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fp128/internal/binary128"
	"fp128/internal/consttab"
	"fp128/quad"
)

var constantsCmd = &cobra.Command{
	Use:   "constants",
	Short: "Print the constants and compare the C literals with the Go codec",
	Long: `constants prints every named constant as the C compiler rounded its
suffixed literal, and checks it bit for bit against the same literal parsed
in Go. The exit status is the number of mismatches.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := useColor(cmd); err != nil {
			return err
		}
		p := quad.Profile()
		bad := color.New(color.FgRed, color.Bold)
		mismatches := 0

		var tab table
		tab.add("NAME", "GO", "LITERAL", "VALUE", "")
		for _, d := range consttab.All() {
			got, ok := quad.Constant(d.Name)
			want, err := d.Value()
			status := "ok"
			switch {
			case !ok:
				status = bad.Sprint("missing")
			case err != nil:
				status = bad.Sprint(err.Error())
			case !binary128.Float(got).Identical(want):
				status = bad.Sprintf("MISMATCH (codec %v)", quad.Float(want))
			}
			if status != "ok" {
				mismatches++
			}
			tab.add(d.Name, "quad."+d.GoName, d.Tagged(p), got.String(), status)
		}
		for _, l := range consttab.Limits() {
			tab.add(l.Name, "quad."+l.GoName, strconv.Itoa(l.Value), "", "")
		}
		if err := tab.write(cmd.OutOrStdout()); err != nil {
			return err
		}
		if mismatches > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%d constants differ from their literals\n", mismatches)
		}
		return exitStatus(mismatches)
	},
}
