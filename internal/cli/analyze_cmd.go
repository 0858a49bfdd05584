package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayplan/internal/cli/formatter"
	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/planner"
	"github.com/alexanderramin/dayplan/internal/repository"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	opts := newRequestOptions()
	var stream, asJSON bool
	var model string

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze a day with the language model",
		Long: `Analyze parses the schedule text (or the saved day when no text is
given), asks the model for a plan and prints it. Identical requests in one
process reuse the cached result.`,
		Example: `  dayplan analyze "9시 투자자미팅, 오후 2시~4시 프로젝트" --energy low
  dayplan analyze --date 2026-03-02 --detail long --advisor sj --custom-advisor 할머니`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			date, err := resolveDate(app, opts.date)
			if err != nil {
				return err
			}
			text, err := readInput(app, args)
			if err != nil {
				return err
			}

			records, err := planner.ParseInput(text)
			if err != nil {
				return fmt.Errorf("%w. %s", err, inputExample)
			}
			fromText := len(records) > 0
			if !fromText && app.Days != nil {
				day, err := app.Days.Get(ctx, date)
				switch {
				case err == nil:
					records = day.Records
				case !errors.Is(err, repository.ErrNotFound):
					return err
				}
			}

			req, err := buildRequest(ctx, app, opts, records)
			if err != nil {
				return err
			}

			areq := planner.AnalyzeRequest{PromptRequest: req, Model: model, Stream: stream}
			if stream && !asJSON {
				areq.OnProgress = func(partial string) {
					fmt.Fprintf(cmd.ErrOrStderr(), "\r분석 중... %d자", len([]rune(partial)))
				}
			}

			stopSpinner := func() {}
			if !stream && !asJSON && app.spinner() {
				stopSpinner = formatter.StartSpinner(cmd.ErrOrStderr(), "분석 중...")
			}
			out, err := app.Planner.Analyze(ctx, areq)
			stopSpinner()
			if stream && !asJSON {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			if err != nil {
				return fmt.Errorf("%s: %w", planner.UserMessage(err), err)
			}

			if fromText && app.Days != nil {
				if err := saveDay(cmd, app, date, req); err != nil {
					return err
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(out.Result)
			}
			printOut(cmd, formatter.FormatAnalysis(out))
			return nil
		},
	}

	opts.register(cmd.Flags())
	cmd.Flags().BoolVar(&stream, "stream", false, "Stream the model reply and show progress")
	cmd.Flags().StringVar(&model, "model", "", "Model override (default from DAYPLAN_LLM_MODEL)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the normalized result as JSON")

	return cmd
}

// saveDay stores the analyzed records, energy and advisor selection for
// the day, keeping any review already recorded.
func saveDay(cmd *cobra.Command, app *App, date string, req domain.PromptRequest) error {
	ctx := cmd.Context()
	rec, err := app.Days.Get(ctx, date)
	if errors.Is(err, repository.ErrNotFound) {
		rec = &domain.DayRecord{Date: date}
	} else if err != nil {
		return err
	}
	rec.Energy = req.Energy
	rec.Records = domain.SortRecords(req.Records)
	rec.Advisors = req.AdvisorIDs()
	return app.Days.Upsert(ctx, rec)
}
