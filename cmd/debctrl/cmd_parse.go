package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/debctrl/format"
	"github.com/dhamidi/debctrl/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a control file and dump its structure",
		Long: `Parse a control file and dump the resulting structure to stdout.

If no file is provided, debian/control is read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "debian/control"
			if len(args) > 0 {
				path = args[0]
			}

			doc := parser.New()
			if err := doc.ReadFile(path); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			var enc format.Encoder
			switch outputFormat {
			case "dump":
				enc = format.NewDumpEncoder(os.Stdout)
			case "json":
				enc = format.NewJSONEncoder(os.Stdout)
			case "control":
				enc = format.NewControlEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown output format %q (want dump, json or control)", outputFormat)
			}

			return enc.Encode(doc)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dump", "output format (dump, json, control)")

	return cmd
}
