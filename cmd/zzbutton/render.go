package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
	"github.com/alexisbeaulieu97/zzbutton/internal/render"
)

type renderOptions struct {
	status string
	reason string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Print the HTML for a button in a given status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.status, "status", "s", string(button.StatusDefault), "Status to render (default, pending, fulfilled, rejected)")
	cmd.Flags().StringVar(&opts.reason, "error", "", "Rejection reason shown for the rejected status")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, id string) error {
	status, err := button.ParseStatus(opts.status)
	if err != nil {
		return err
	}

	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}
	props, err := app.props(id)
	if err != nil {
		return err
	}

	var reason error
	if status == button.StatusRejected {
		reason = button.ErrRejected
		if opts.reason != "" {
			reason = errors.New(opts.reason)
		}
	}

	html, err := render.String(cmd.Context(), button.ViewFor(props, status, reason))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}
