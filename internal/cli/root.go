package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayplan/internal/planner"
	"github.com/alexanderramin/dayplan/internal/prompt"
	"github.com/alexanderramin/dayplan/internal/repository"
)

// App holds the collaborators used by CLI commands.
type App struct {
	Planner   *planner.Planner
	Assembler *prompt.Assembler
	Catalog   *prompt.Catalog

	// Days and Profiles may be nil when no database is configured.
	Days     repository.DayRecordRepo
	Profiles repository.UserProfileRepo

	Stdin io.Reader
	// IsInteractive reports whether stdin is a terminal. Input is read from
	// stdin only when it is not.
	IsInteractive func() bool
	// ShowSpinner reports whether stderr can animate a spinner while the
	// model is working. Nil disables it.
	ShowSpinner func() bool
	Now         func() time.Time
}

func (a *App) stdin() io.Reader {
	if a.Stdin != nil {
		return a.Stdin
	}
	return os.Stdin
}

func (a *App) interactive() bool {
	if a.IsInteractive == nil {
		return true
	}
	return a.IsInteractive()
}

func (a *App) spinner() bool {
	return a.ShowSpinner != nil && a.ShowSpinner()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "dayplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayplan",
		Short: "Turn a free-text day into a coached daily plan",
		Long: `dayplan parses a Korean free-text schedule such as
"9시 투자자미팅, 오후 2시~4시 프로젝트" and asks a language model for a
timeline, per-item tips, advisor comments and an overall tip.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newParseCmd(app),
		newPromptCmd(app),
		newAnalyzeCmd(app),
		newAdvisorsCmd(app),
		newDayCmd(app),
		newProfileCmd(app),
	)

	return root
}
