package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/linkdraw/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration files",
	}
	cmd.AddCommand(configCheckCmd(), configDefaultCmd())
	return cmd
}

func configCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and validate a config file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(args[0]); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", bad.Sprint("✗"), err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid\n", good.Sprint("✓"), args[0])
			return nil
		},
	}
}

func configDefaultCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:           "default",
		Short:         "Print the built-in configuration",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := config.Marshal(f, config.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format (toml or yaml)")
	return cmd
}
