package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fp128/internal/symtab"
	"fp128/quad"
)

var symbolsCategory string

func init() {
	symbolsCmd.Flags().StringVar(&symbolsCategory, "category", "", "only show one category (e.g. real-unary)")
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Print the resolved operation table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := quad.Default().Table()
		descs := t.Descriptors()
		if symbolsCategory != "" {
			c, err := symtab.ParseCategory(symbolsCategory)
			if err != nil {
				return err
			}
			descs = t.ByCategory(c)
		}

		var tab table
		tab.add("NAME", "CATEGORY", "SYMBOL", "INT")
		for _, d := range descs {
			it := ""
			if d.Int.Bits != 0 {
				it = d.Int.String()
			}
			tab.add(d.Name, d.Category.String(), d.Symbol, it)
		}
		if err := tab.write(cmd.OutOrStdout()); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d operations, %s\n", len(descs), t.Profile().Runtime)
		return err
	},
}
