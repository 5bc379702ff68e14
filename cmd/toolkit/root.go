package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toolkit/internal/settings"
)

func newRootCmd() *cobra.Command {
	app := newAppContext()

	cmd := &cobra.Command{
		Use:           "toolkit",
		Short:         "Toolkit renders and exercises the time and date picker widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	settings.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStoriesCmd(app))
	cmd.AddCommand(newTimePickerCmd(app))
	cmd.AddCommand(newDatePickerCmd(app))
	cmd.AddCommand(newOptionsCmd(app))
	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newInitCmd(app))

	return cmd
}
