package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/zzbutton/internal/components"
	"github.com/alexisbeaulieu97/zzbutton/internal/config"
	"github.com/alexisbeaulieu97/zzbutton/internal/tui"
	"github.com/alexisbeaulieu97/zzbutton/internal/watch"
)

type runOptions struct {
	watch bool
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the buttons in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload buttons when the config file changes")

	return cmd
}

func runRun(cmd *cobra.Command, flags *rootFlags, opts *runOptions) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model := tui.NewModel(app.Props, app.Dispatcher, tui.Options{
		Title:   app.Config.Name,
		Theme:   components.GetTheme(),
		Logger:  app.Logger,
		Context: ctx,
	})

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		// Nothing can be clicked without a terminal; show the initial state.
		fmt.Fprintln(out, model.View())
		return nil
	}

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(out), tea.WithInput(cmd.InOrStdin()))

	if opts.watch {
		watcher, err := watch.New(app.Path, watch.DefaultDebounce, app.Logger)
		if err != nil {
			return err
		}
		defer watcher.Close()

		go watcher.Run(ctx, func(cfg *config.Config, err error) {
			if err == nil {
				err = app.reload(cfg)
			}
			if err != nil {
				program.Send(tui.PropsChangedMsg{Err: err})
				return
			}
			program.Send(tui.PropsChangedMsg{Props: app.Props})
		})
	}

	_, err = program.Run()
	return err
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
