package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
	"github.com/alexisbeaulieu97/zzbutton/internal/components"
	"github.com/alexisbeaulieu97/zzbutton/internal/render"
	"github.com/alexisbeaulieu97/zzbutton/internal/tui"
)

// errRejected marks a click whose action rejected, so the exit status is
// non-zero.
var errRejected = errors.New("action rejected")

type clickOptions struct {
	timeout time.Duration
	html    bool
	tui     bool
}

func newClickCmd(flags *rootFlags) *cobra.Command {
	opts := &clickOptions{}

	cmd := &cobra.Command{
		Use:   "click <id>",
		Short: "Click a button without a UI and report its status changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClick(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Give up waiting after this long (0 waits forever)")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Also print the final HTML rendering")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "Click through the terminal UI and quit once the action settles")

	return cmd
}

func runClick(cmd *cobra.Command, flags *rootFlags, opts *clickOptions, id string) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}
	props, err := app.props(id)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	out := cmd.OutOrStdout()
	if opts.tui {
		return clickThroughTUI(ctx, cmd, app, props, opts)
	}

	b := button.New(props)
	log := app.Logger.With("button", id)

	fmt.Fprintln(out, b.Status())
	prev := b.Status()
	pressErr := button.Press(ctx, b, app.Dispatcher, func(s button.Status) {
		log.Transition(id, prev.String(), s.String())
		prev = s
		fmt.Fprintln(out, s)
	})
	if pressErr != nil {
		return fmt.Errorf("click %s: %w", id, pressErr)
	}

	return report(ctx, out, b, opts)
}

// clickThroughTUI runs the click inside a Bubble Tea program that quits as
// soon as the button settles.
func clickThroughTUI(ctx context.Context, cmd *cobra.Command, app *AppContext, props button.Props, opts *clickOptions) error {
	out := cmd.OutOrStdout()
	model := tui.NewModel([]button.Props{props}, app.Dispatcher, tui.Options{
		Title:        app.Config.Name,
		Theme:        components.GetTheme(),
		Logger:       app.Logger,
		Context:      ctx,
		AutoClick:    props.ID,
		QuitOnSettle: true,
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(out), tea.WithInput(nil)}
	if !isTerminal(out) {
		programOpts = append(programOpts, tea.WithoutRenderer())
	}

	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return fmt.Errorf("click %s: %w", props.ID, err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("click %s: unexpected model %T", props.ID, final)
	}
	b, ok := m.Button(props.ID)
	if !ok {
		return fmt.Errorf("click %s: button vanished", props.ID)
	}
	if len(m.Transitions()) == 0 {
		return fmt.Errorf("click %s: %w", props.ID, button.ErrNotClickable)
	}

	fmt.Fprintln(out, button.StatusDefault)
	for _, t := range m.Transitions() {
		fmt.Fprintln(out, t.To)
	}
	return report(ctx, out, b, opts)
}

func report(ctx context.Context, out io.Writer, b *button.Button, opts *clickOptions) error {
	if err := printView(out, b.View()); err != nil {
		return err
	}
	if opts.html {
		html, err := render.String(ctx, b.View())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, html)
	}

	if b.Status() == button.StatusRejected {
		return fmt.Errorf("click %s: %w: %v", b.ID(), errRejected, b.Err())
	}
	return nil
}

func printView(w io.Writer, v button.View) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "label:\t%s\n", v.Label)
	if v.Icon != "" {
		fmt.Fprintf(writer, "icon:\t%s\n", v.Icon)
	}
	fmt.Fprintf(writer, "classes:\t%s\n", v.Class())
	fmt.Fprintf(writer, "status:\t%s\n", v.Status)
	fmt.Fprintf(writer, "disabled:\t%t\n", v.Disabled)
	if v.Value != nil {
		fmt.Fprintf(writer, "value:\t%v\n", v.Value)
	}
	if text := v.ErrorText(); text != "" {
		fmt.Fprintf(writer, "error:\t%s\n", text)
	}
	return writer.Flush()
}
