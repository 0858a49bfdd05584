package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayplan/internal/planner"
	"github.com/alexanderramin/dayplan/internal/prompt"
)

func newPromptCmd(app *App) *cobra.Command {
	opts := newRequestOptions()
	var withSystem bool

	cmd := &cobra.Command{
		Use:   "prompt [text]",
		Short: "Print the messages that analyze would send to the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(app, args)
			if err != nil {
				return err
			}
			records, err := planner.ParseInput(text)
			if err != nil {
				return fmt.Errorf("%w. %s", err, inputExample)
			}
			req, err := buildRequest(cmd.Context(), app, opts, records)
			if err != nil {
				return err
			}

			if withSystem {
				printOut(cmd, "=== system ===\n"+app.Assembler.SystemPrompt()+"\n\n")
				printOut(cmd, "=== user ===\n")
			}
			printOut(cmd, prompt.UserMessage(req)+"\n")
			return nil
		},
	}

	opts.register(cmd.Flags())
	cmd.Flags().BoolVar(&withSystem, "system", false, "Include the system prompt")

	return cmd
}
