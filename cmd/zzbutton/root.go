package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/zzbutton/internal/logger"
)

const defaultConfigPath = "zzbutton.yaml"

// rootFlags resolves persistent settings from flags and ZZBUTTON_* env vars.
type rootFlags struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "zzbutton",
		Short:         "zzbutton drives smart buttons defined in YAML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", defaultConfigPath, "Path to the button document")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", string(logger.FormatConsole), "Log format (console, json)")

	flags.v.SetEnvPrefix("ZZBUTTON")
	flags.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	flags.v.AutomaticEnv()
	flags.v.BindPFlags(cmd.PersistentFlags()) //nolint:errcheck

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newClickCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) configPath() string {
	return f.v.GetString("config")
}

// logLevel returns the explicitly requested level, or fallback when neither
// the flag nor the environment set one.
func (f *rootFlags) logLevel(fallback string) string {
	if !f.v.IsSet("log-level") && fallback != "" {
		return fallback
	}
	return f.v.GetString("log-level")
}

func (f *rootFlags) logFormat() logger.Format {
	return logger.Format(f.v.GetString("log-format"))
}
