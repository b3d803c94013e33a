package cmd

import (
	"context"

	"github.com/footprint-app/footprint/internal/app"
	"github.com/spf13/cobra"
)

func EmissionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emissions <user-id>",
		Short: "Print a user's total emissions and per-type breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				emissions, err := a.EmissionService.Emissions(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), emissions)
			})
		},
	}
}

func TipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips <user-id>",
		Short: "Generate and persist tips for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				advisories, err := a.TipService.Generate(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), advisories)
			})
		},
	}
}

func GoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Goal commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <user-id>",
		Short: "Mark goals achieved when current emissions are within target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				evaluation, err := a.GoalService.CheckAchievements(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), evaluation)
			})
		},
	})

	return cmd
}

func ReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <user-id>",
		Short: "Generate a report snapshot for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return withApp(func(a *app.App) error {
				report, err := a.ReportService.Generate(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), report)
			})
		},
	}
}
