package cli

import (
	"github.com/spf13/cobra"
)

// NewPushCommand creates the push command.
func NewPushCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "push <key> <value>",
		Short: "Append a value to the array at a dotted key",
		Long: `Append a value to the array at a dotted key and print the array. If the
current value is missing or not an array it is replaced with a new
one-element array.`,
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
			arr, err := st.Push(cmd.Context(), args[0], parseValue(args[1]))
			if err != nil {
				return reportOpError(out, err)
			}
			data, err := payload(rootOpts.Format, arr)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to render value", err)
			}
			return out.Success(data)
		},
	}
}

// NewPullCommand creates the pull command.
func NewPullCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pull <key> <value>",
		Short: "Remove matching elements from the array at a dotted key",
		Long: `Remove every element of the array at a dotted key that matches the
value and print the remaining array. An object value also matches by a
subset of its fields, so an element can be removed without spelling out
all of it.

Example:
  dotdb pull tags x
  dotdb pull users '{"name":"tyler"}'`,
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
			arr, _, err := st.Pull(cmd.Context(), args[0], parseValue(args[1]))
			if err != nil {
				return reportOpError(out, err)
			}
			data, err := payload(rootOpts.Format, arr)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to render value", err)
			}
			return out.Success(data)
		},
	}
}
