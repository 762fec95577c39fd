package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/debctrl/control"
	"github.com/dhamidi/debctrl/parser"
	"github.com/dhamidi/debctrl/workspace"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [file...]",
		Short: "Check control files against Debian policy",
		Long: `Parse control files and report syntax problems and policy
violations such as duplicate fields or invalid package names.

If no file is provided, debian/control is checked. The exit status is
non-zero when any file has a critical error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"debian/control"}
			}

			criticals := 0
			for _, path := range paths {
				criticals += lintFile(path)
			}

			if criticals > 0 {
				return fmt.Errorf("%d critical error(s)", criticals)
			}
			return nil
		},
	}

	return cmd
}

func lintFile(path string) (criticals int) {
	rec := &workspace.Recorder{}

	doc := parser.New()
	doc.SetHandler(rec)
	if err := doc.ReadFile(path); err == nil {
		if _, err := control.Parse(doc); err != nil {
			rec.Critical(nil, err.Error())
		}
	}

	for _, diag := range rec.Diags {
		label := "warning"
		if diag.Severity == workspace.SeverityCritical {
			label = "error"
			criticals++
		}
		if diag.Context != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", diag.Context, label, diag.Message)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", path, label, diag.Message)
		}
	}

	return criticals
}
