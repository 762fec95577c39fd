package main

import (
	"fmt"

	debversion "github.com/dhamidi/debctrl/version"
	"github.com/spf13/cobra"
)

func newVercmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vercmp <version> [version]",
		Short: "Inspect or compare Debian package versions",
		Long: `With one argument, split the version into its epoch, upstream
version and Debian revision. With two arguments, compare them and print
the relation as <, = or >.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := debversion.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}

			if len(args) == 1 {
				fmt.Printf("Epoch:            %d\n", a.Epoch)
				fmt.Printf("Upstream version: %s\n", a.Upstream)
				fmt.Printf("Debian revision:  %s\n", a.Revision)
				return nil
			}

			b, err := debversion.Parse(args[1])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}

			relation := "="
			switch cmp := debversion.Compare(a, b); {
			case cmp < 0:
				relation = "<"
			case cmp > 0:
				relation = ">"
			}
			fmt.Printf("%s %s %s\n", args[0], relation, args[1])
			return nil
		},
	}
}
