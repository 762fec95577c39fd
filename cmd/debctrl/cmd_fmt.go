package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/debctrl/format"
	"github.com/dhamidi/debctrl/parser"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat a control file into canonical form",
		Long: `Reformat a control file to stdout.

If no file is provided, reads the control file from stdin.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := parser.New()

			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				if err := doc.Read(bytes.NewReader(source), "<stdin>"); err != nil {
					return fmt.Errorf("parse stdin: %w", err)
				}
			} else {
				if err := doc.ReadFile(args[0]); err != nil {
					return fmt.Errorf("parse %s: %w", args[0], err)
				}
			}

			if fmtOverwrite {
				var buf bytes.Buffer
				if err := format.NewControlEncoder(&buf).Encode(doc); err != nil {
					return err
				}
				return os.WriteFile(args[0], buf.Bytes(), 0644)
			}

			return format.NewControlEncoder(os.Stdout).Encode(doc)
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
