// Command quadgen writes the cgo bindings and the public facade from the
// operation and constant tables:
//
//	quad/zz_facade.go
//	internal/libquad/zz_quadmath.go   (amd64)
//	internal/libquad/zz_libm.go       (arm64, riscv64)
//
// It is run through go generate in package quad. With --check it writes
// nothing and fails when a file on disk is stale.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "quadgen",
	Short:         "Generate quad bindings and facade",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := cmd.Flags().GetString("root")
		if err != nil {
			return err
		}
		check, err := cmd.Flags().GetBool("check")
		if err != nil {
			return err
		}
		files, err := render(root)
		if err != nil {
			return err
		}
		for _, f := range files {
			if check {
				if err := compare(f); err != nil {
					return err
				}
				continue
			}
			if err := os.WriteFile(f.path, f.data, 0o644); err != nil { //nolint:gosec // generated source is world-readable
				return fmt.Errorf("write %s: %w", f.path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.path)
		}
		return nil
	},
}

type output struct {
	path string
	data []byte
}

func render(root string) ([]output, error) {
	var files []output
	data, err := facade()
	if err != nil {
		return nil, err
	}
	files = append(files, output{filepath.Join(root, "quad", "zz_facade.go"), data})
	for _, s := range strategies() {
		data, err := bindings(s)
		if err != nil {
			return nil, err
		}
		files = append(files, output{filepath.Join(root, "internal", "libquad", s.file), data})
	}
	return files, nil
}

func compare(f output) error {
	onDisk, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("check %s: %w", f.path, err)
	}
	if !bytes.Equal(onDisk, f.data) {
		return fmt.Errorf("%s is stale; run go generate ./quad", f.path)
	}
	return nil
}

func main() {
	rootCmd.Flags().String("root", ".", "module root to write into")
	rootCmd.Flags().Bool("check", false, "fail if generated files are stale instead of writing them")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "quadgen:", err)
		os.Exit(1)
	}
}
