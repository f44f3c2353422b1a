package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"dotdb/internal/value"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <key> <n>",
		Short: "Increment the number at a dotted key",
		Long: `Increment the number at a dotted key by n and print the result. An
absent key starts from 0; a present non-numeric value fails and nothing
changes.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccumulate(rootOpts, cmd, args, false)
		},
	}
}

// NewSubtractCommand creates the subtract command.
func NewSubtractCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "subtract <key> <n>",
		Short:         "Decrement the number at a dotted key",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccumulate(rootOpts, cmd, args, true)
		},
	}
}

func runAccumulate(rootOpts *RootOptions, cmd *cobra.Command, args []string, subtract bool) error {
	n, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return WrapExitError(ExitFailure, "amount must be numeric", err)
	}

	st, _, err := openStore(rootOpts)
	if err != nil {
		return err
	}
	defer st.Close()

	out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	var result value.Number
	if subtract {
		result, err = st.Subtract(cmd.Context(), args[0], n)
	} else {
		result, err = st.Add(cmd.Context(), args[0], n)
	}
	if err != nil {
		return reportOpError(out, err)
	}

	data, err := payload(rootOpts.Format, result)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to render value", err)
	}
	return out.Success(data)
}
