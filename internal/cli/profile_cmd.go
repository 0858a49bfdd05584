package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayplan/internal/cli/formatter"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the profile sent with every analysis",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Profiles == nil {
				return errNoDatabase
			}
			return nil
		},
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(cmd.Context(), app)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatProfile(&p))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var traits, meds, prefs []string
	var sleepGoal, notes string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields; flags not given are left unchanged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := loadProfile(ctx, app)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("trait") {
				p.Traits = traits
			}
			if flags.Changed("medication") {
				p.Medications = meds
			}
			if flags.Changed("preference") {
				p.Preferences = prefs
			}
			if flags.Changed("sleep-goal") {
				p.SleepGoal = sleepGoal
			}
			if flags.Changed("notes") {
				p.Notes = notes
			}
			if err := app.Profiles.Upsert(ctx, &p); err != nil {
				return err
			}
			printOut(cmd, formatter.FormatProfile(&p))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&traits, "trait", nil, "Trait (repeatable; replaces the list)")
	cmd.Flags().StringArrayVar(&meds, "medication", nil, "Medication and timing (repeatable)")
	cmd.Flags().StringArrayVar(&prefs, "preference", nil, "Planning preference (repeatable)")
	cmd.Flags().StringVar(&sleepGoal, "sleep-goal", "", "Target bedtime, e.g. 23:30")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}
