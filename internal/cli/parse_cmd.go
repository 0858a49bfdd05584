package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayplan/internal/cli/formatter"
	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/planner"
	"github.com/alexanderramin/dayplan/internal/repository"
	"github.com/alexanderramin/dayplan/internal/schedparse"
)

const inputExample = `예) "9시 투자자미팅, 오후 2시~4시 프로젝트"`

func newParseCmd(app *App) *cobra.Command {
	var save bool
	var date string

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse free-text schedule into records",
		Example: `  dayplan parse "9시 투자자미팅, 오후 2시~4시 프로젝트"
  echo "7시 반 조깅" | dayplan parse --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(app, args)
			if err != nil {
				return err
			}
			res := schedparse.ParseDetailed(text)
			if res.Unrecognized() {
				return fmt.Errorf("%w. %s", planner.ErrTimeNotRecognized, inputExample)
			}

			printOut(cmd, formatter.FormatRecords(res.Records))
			printOut(cmd, formatter.FormatDropped(res.Dropped))

			if !save {
				return nil
			}
			day, err := resolveDate(app, date)
			if err != nil {
				return err
			}
			if err := saveRecords(cmd.Context(), app, day, res.Records); err != nil {
				return err
			}
			printOut(cmd, formatter.Dim(fmt.Sprintf("Saved %d item(s) to %s.", len(res.Records), day))+"\n")
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Append the parsed records to the day")
	cmd.Flags().StringVar(&date, "date", "", "Day key YYYY-MM-DD (default today)")

	return cmd
}

// saveRecords appends records to the stored day, creating it if needed.
func saveRecords(ctx context.Context, app *App, date string, records []domain.ScheduleRecord) error {
	if app.Days == nil {
		return errNoDatabase
	}
	rec, err := app.Days.Get(ctx, date)
	if errors.Is(err, repository.ErrNotFound) {
		rec = &domain.DayRecord{Date: date, Energy: domain.DefaultEnergy}
	} else if err != nil {
		return err
	}
	rec.Records = domain.SortRecords(append(rec.Records, records...))
	return app.Days.Upsert(ctx, rec)
}

var errNoDatabase = errors.New("no database configured (set DAYPLAN_DB)")
