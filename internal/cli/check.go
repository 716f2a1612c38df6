package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate Markdown files without writing output",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.check = true
			return runConvert(cmd, args, flags)
		},
	}

	addSharedFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Parse and validate Markdown files without writing any HTML.

The exit status is non-zero when any file fails to parse, which makes
check suitable for CI pipelines and pre-commit hooks.

Examples:
  mdconv check                  # Validate current directory
  mdconv check docs/ README.md  # Validate specific paths
  mdconv check --collect        # Report every error in each file`
