package cli

import (
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value at a dotted key",
		Long: `Print the value stored at a dotted key.

Example:
  dotdb get user.data.age`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			v, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return reportOpError(out, err)
			}
			data, err := payload(rootOpts.Format, v)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to render value", err)
			}
			return out.Success(data)
		},
	}
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value at a dotted key",
		Long: `Store a value at a dotted key, creating intermediate objects as needed.
The value is parsed as JSON; anything that is not valid JSON is stored as
a plain string.

Example:
  dotdb set user.data.age 21
  dotdb set user.name tyler
  dotdb set user.tags '["a","b"]'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if err := st.Set(cmd.Context(), args[0], parseValue(args[1])); err != nil {
				return reportOpError(out, err)
			}
			return out.Success("ok")
		},
	}
}

// NewHasCommand creates the has command.
func NewHasCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "has <key>",
		Short:         "Report whether a dotted key holds a value",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			ok, err := st.Has(cmd.Context(), args[0])
			if err != nil {
				return reportOpError(out, err)
			}
			return out.Success(ok)
		},
	}
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove the value at a dotted key",
		Long: `Remove the value at a dotted key. A single-segment key removes the whole
top-level record; a multi-segment key removes one nested field.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return reportOpError(out, err)
			}
			return out.Success("deleted")
		},
	}
}
