package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dotdb/internal/store"
)

// NewWipeCommand creates the wipe command.
func NewWipeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "wipe <confirmation>",
		Short: "Erase every record",
		Long: `Erase every top-level record. The confirmation argument must be exactly
one of the two accepted acknowledgement sentences; run with a wrong
sentence to see which one your locale expects.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, cfg, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if err := st.DeleteAll(cmd.Context(), args[0]); err != nil {
				if store.IsValidation(err) {
					hint := fmt.Sprintf("confirmation rejected, expected: %q", store.ConfirmationFor(cfg.Locale))
					return WrapExitError(ExitFailure, hint, err)
				}
				return reportOpError(out, err)
			}
			return out.Success("wiped")
		},
	}
}
