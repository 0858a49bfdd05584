package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayplan/internal/cli/formatter"
	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/repository"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show and review saved days",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Days == nil {
				return errNoDatabase
			}
			return nil
		},
	}

	cmd.AddCommand(
		newDayShowCmd(app),
		newDayListCmd(app),
		newDayReviewCmd(app),
		newDayClearCmd(app),
	)

	return cmd
}

func newDayShowCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the records saved for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			rec, err := app.Days.Get(cmd.Context(), day)
			if errors.Is(err, repository.ErrNotFound) {
				printOut(cmd, formatter.Dim(fmt.Sprintf("Nothing saved for %s.", day))+"\n")
				return nil
			}
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatDay(rec))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day key YYYY-MM-DD (default today)")

	return cmd
}

func newDayListCmd(app *App) *cobra.Command {
	var from, to string
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved days in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := resolveDate(app, to)
			if err != nil {
				return err
			}
			start := from
			if start == "" {
				t, _ := time.Parse(domain.DateLayout, end)
				start = t.AddDate(0, 0, -(days - 1)).Format(domain.DateLayout)
			} else if start, err = resolveDate(app, start); err != nil {
				return err
			}

			recs, err := app.Days.ListRange(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			printOut(cmd, formatter.FormatDayList(recs))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day YYYY-MM-DD (default: --days before --to)")
	cmd.Flags().StringVar(&to, "to", "", "Last day YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&days, "days", 7, "Range length when --from is not set")

	return cmd
}

func newDayReviewCmd(app *App) *cobra.Command {
	var date, review string
	var completed int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Record an end-of-day review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			day, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			if completed < 0 {
				return fmt.Errorf("--completed must be >= 0")
			}
			rec, err := app.Days.Get(ctx, day)
			if errors.Is(err, repository.ErrNotFound) {
				rec = &domain.DayRecord{Date: day, Energy: domain.DefaultEnergy}
			} else if err != nil {
				return err
			}
			if cmd.Flags().Changed("text") {
				rec.Review = review
			}
			if cmd.Flags().Changed("completed") {
				rec.CompletedCount = completed
			}
			if err := app.Days.Upsert(ctx, rec); err != nil {
				return err
			}
			printOut(cmd, formatter.Dim(fmt.Sprintf("Review saved for %s.", day))+"\n")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day key YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&review, "text", "", "Review text")
	cmd.Flags().IntVar(&completed, "completed", 0, "Number of completed items")

	return cmd
}

func newDayClearCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			if err := app.Days.Delete(cmd.Context(), day); err != nil {
				return err
			}
			printOut(cmd, formatter.Dim(fmt.Sprintf("Cleared %s.", day))+"\n")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day key YYYY-MM-DD (default today)")

	return cmd
}
