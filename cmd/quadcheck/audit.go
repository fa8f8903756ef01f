package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fp128/internal/audit"
	"fp128/quad"
)

var auditVerbose bool

func init() {
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "list every symbol with its address")
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Look up every tagged symbol in the runtime library with dlsym",
	Long: `audit opens the strategy's runtime library at run time and resolves
every symbol of the operation table, independently of the link-time
bindings. The exit status is the number of missing symbols.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := useColor(cmd); err != nil {
			return err
		}
		f := quad.Default()
		res, err := audit.Run(f.Table(), f.Profile().Runtime)
		if err != nil {
			return err
		}
		missing := color.New(color.FgRed, color.Bold)

		var tab table
		for _, e := range res.Entries {
			switch {
			case !e.Found():
				tab.add(e.Name, e.Symbol, missing.Sprint("missing"))
			case auditVerbose:
				tab.add(e.Name, e.Symbol, fmt.Sprintf("%#x", e.Addr))
			}
		}
		if err := tab.write(cmd.OutOrStdout()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d of %d symbols found\n",
			res.Library, len(res.Entries)-res.Missing, len(res.Entries))
		return exitStatus(res.Missing)
	},
}
