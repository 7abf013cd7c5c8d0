package main

import (
	"errors"
	"fmt"
	"io"
	"medirisk-service/internal/app/services/core/profiles"
	"medirisk-service/internal/pkg/exceptions"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "schemacheck",
		Short:         "Validate patient profile documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(validateCmd())
	return rootCmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a JSON profile read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readDocument(cmd, args)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				return err
			}

			profile, err := profiles.Check(data)
			if err != nil {
				printCheckError(cmd.ErrOrStderr(), err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), profile.Name)
			fmt.Fprintln(cmd.OutOrStdout(), profile.Age)
			return nil
		},
	}
}

func readDocument(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func printCheckError(w io.Writer, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	if len(customErr.Errors) == 0 {
		fmt.Fprintf(w, "error: %s\n", customErr.DevMessage)
		return
	}
	fmt.Fprintf(w, "%d validation error(s):\n", len(customErr.Errors))
	for _, fieldErr := range customErr.Errors {
		fmt.Fprintf(w, "  %s: %s\n", fieldErr.Field, fieldErr.Message)
	}
}
