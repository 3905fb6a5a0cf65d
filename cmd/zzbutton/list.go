package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the buttons in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	app, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, app.Config.Name, app.Props)
	}
	return renderListTable(cmd, app.Props)
}

func renderListTable(cmd *cobra.Command, props []button.Props) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tLABEL\tACTION\tENABLED\tDELAY\tCLASSES")
	for _, p := range props {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%t\t%s\t%s\n",
			p.ID,
			valueOrFallback(p.Label, "(no label)"),
			valueOrFallback(p.Action, "-"),
			p.Enabled,
			button.New(p).Delay(),
			strings.Join(button.ClassList(p), " "),
		)
	}

	return writer.Flush()
}

type listJSONButton struct {
	ID      string            `json:"id"`
	Label   string            `json:"label"`
	Icon    string            `json:"icon,omitempty"`
	Labels  map[string]string `json:"labels,omitempty"`
	Icons   map[string]string `json:"icons,omitempty"`
	Action  string            `json:"action,omitempty"`
	Enabled bool              `json:"enabled"`
	DelayMS int64             `json:"delay_ms"`
	Classes []string          `json:"classes"`
}

type listJSONPayload struct {
	Name    string           `json:"name"`
	Count   int              `json:"count"`
	Buttons []listJSONButton `json:"buttons"`
}

func renderListJSON(cmd *cobra.Command, name string, props []button.Props) error {
	payload := listJSONPayload{
		Name:    name,
		Count:   len(props),
		Buttons: make([]listJSONButton, len(props)),
	}

	for i, p := range props {
		payload.Buttons[i] = listJSONButton{
			ID:      p.ID,
			Label:   p.Label,
			Icon:    p.Icon,
			Labels:  overridesJSON(p.Labels),
			Icons:   overridesJSON(p.Icons),
			Action:  p.Action,
			Enabled: p.Enabled,
			DelayMS: button.New(p).Delay().Milliseconds(),
			Classes: button.ClassList(p),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func overridesJSON(in map[button.Status]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for status, value := range in {
		out[status.String()] = value
	}
	return out
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
