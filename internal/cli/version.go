package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ontl/ntlwiz/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ntlwiz %s\n", version.GetFullVersion())
			return err
		},
	}
}
