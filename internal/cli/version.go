package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			return nil
		},
		// Version needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jsonOutput {
				j, err := json.Marshal(struct {
					Version string `json:"version"`
				}{Version})
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(j))

				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Movement Version: %s\n", Version)

			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output version info as JSON")

	return cmd
}
