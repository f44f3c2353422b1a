package cli

import (
	"github.com/spf13/cobra"
)

// NewAllCommand creates the all command.
func NewAllCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "all",
		Short:         "Print the entire document",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			doc, err := st.GetAll(cmd.Context())
			if err != nil {
				return reportOpError(out, err)
			}
			data, err := payload(rootOpts.Format, doc)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to render document", err)
			}
			return out.Success(data)
		},
	}
}
