package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayplan/internal/domain"
	"github.com/alexanderramin/dayplan/internal/prompt"
	"github.com/alexanderramin/dayplan/internal/repository"
)

const maxStdinBytes = 1 << 20

// readInput returns the schedule text from args, or from stdin when no
// args are given and stdin is not a terminal.
func readInput(app *App, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if app.interactive() {
		return "", nil
	}
	data, err := io.ReadAll(io.LimitReader(app.stdin(), maxStdinBytes))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// resolveDate returns the --date value or today's key.
func resolveDate(app *App, date string) (string, error) {
	if date == "" {
		return app.now().Format(domain.DateLayout), nil
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return "", fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
	}
	return date, nil
}

// loadProfile returns the stored profile, or an empty one when none is
// configured.
func loadProfile(ctx context.Context, app *App) (domain.UserProfile, error) {
	if app.Profiles == nil {
		return domain.UserProfile{}, nil
	}
	p, err := app.Profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.UserProfile{}, nil
	}
	if err != nil {
		return domain.UserProfile{}, err
	}
	return *p, nil
}

// buildRequest assembles the prompt request from flags and records.
func buildRequest(ctx context.Context, app *App, opts *requestOptions, records []domain.ScheduleRecord) (domain.PromptRequest, error) {
	profile, err := loadProfile(ctx, app)
	if err != nil {
		return domain.PromptRequest{}, err
	}
	ids := opts.advisors
	if len(ids) == 0 && len(opts.custom) == 0 {
		ids = prompt.DefaultAdvisorIDs
	}
	for _, id := range ids {
		if _, ok := app.Catalog.Lookup(id); !ok {
			return domain.PromptRequest{}, fmt.Errorf("unknown advisor %q (see `dayplan advisors`)", id)
		}
	}
	return domain.PromptRequest{
		Records:   records,
		Energy:    domain.EnergyLevel(opts.energy),
		Advisors:  app.Catalog.Select(ids, opts.custom),
		Profile:   profile,
		Detail:    domain.DetailMode(opts.detail),
		IsRestDay: opts.rest || len(records) == 0,
	}, nil
}

func printOut(cmd *cobra.Command, s string) {
	fmt.Fprint(cmd.OutOrStdout(), s)
}
