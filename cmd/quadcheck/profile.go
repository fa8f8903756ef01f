package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"fp128/internal/libquad"
	"fp128/quad"
)

var profileFormat string

func init() {
	profileCmd.Flags().StringVar(&profileFormat, "format", "pretty", "output format (pretty|json)")
}

type storagePayload struct {
	Type      string `json:"type"`
	Allocated int    `json:"allocated"`
	Populated int    `json:"populated"`
	MantDig   int    `json:"mant_dig"`
	Bytes     string `json:"minus_one"`
}

type profilePayload struct {
	Arch          string         `json:"arch"`
	Triple        string         `json:"triple"`
	Compiler      string         `json:"compiler"`
	Strategy      string         `json:"strategy"`
	LiteralSuffix string         `json:"literal_suffix"`
	FormatTag     string         `json:"format_tag"`
	FunctionTag   string         `json:"function_tag"`
	Runtime       string         `json:"runtime"`
	Header        string         `json:"header"`
	ScalarType    string         `json:"scalar_type"`
	ComplexType   string         `json:"complex_type"`
	Quad          storagePayload `json:"quad"`
	LongDouble    storagePayload `json:"long_double"`
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the target profile and the storage measurements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := quad.Profile()
		payload := profilePayload{
			Arch:          p.Arch,
			Triple:        p.Triple,
			Compiler:      p.Compiler,
			Strategy:      p.Kind.String(),
			LiteralSuffix: p.LiteralSuffix,
			FormatTag:     p.FormatTag,
			FunctionTag:   p.FunctionTag,
			Runtime:       p.Runtime,
			Header:        p.Header,
			ScalarType:    p.ScalarType,
			ComplexType:   p.ComplexType,
			Quad:          storageOf(libquad.MeasureQuad()),
			LongDouble:    storageOf(libquad.MeasureLongDouble()),
		}
		switch strings.ToLower(profileFormat) {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		case "pretty":
			return renderProfilePretty(cmd.OutOrStdout(), payload)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", profileFormat)
		}
	},
}

func storageOf(s libquad.Storage) storagePayload {
	return storagePayload{
		Type:      s.Type,
		Allocated: s.Allocated,
		Populated: s.Populated,
		MantDig:   s.MantDig,
		Bytes:     fmt.Sprintf("% x", s.Bytes),
	}
}

func renderProfilePretty(w io.Writer, p profilePayload) error {
	var tab table
	tab.add("arch", p.Arch+" ("+p.Triple+")")
	tab.add("compiler", p.Compiler)
	tab.add("strategy", p.Strategy)
	tab.add("types", p.ScalarType+", "+p.ComplexType)
	tab.add("literal suffix", p.LiteralSuffix)
	tab.add("format", "%"+p.FormatTag+"f")
	tab.add("symbols", "<name>"+p.FunctionTag+" from "+p.Runtime+" ("+p.Header+")")
	for _, s := range []storagePayload{p.Quad, p.LongDouble} {
		tab.add(s.Type, fmt.Sprintf("%d bytes allocated, %d populated, %d significand bits",
			s.Allocated, s.Populated, s.MantDig))
		tab.add("", "-1 = "+s.Bytes)
	}
	return tab.write(w)
}
