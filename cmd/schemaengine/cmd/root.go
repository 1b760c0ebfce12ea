package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command for the schemaengine CLI.
var rootCmd = &cobra.Command{
	Use:   "schemaengine",
	Short: "Infer JSON schemas, pagination patterns, and widget suggestions",
	Long: `schemaengine is a command-line front end over the schema inference
engine that powers a headless dashboard: point it at sample JSON responses
and it reports a field-level schema, an inferred pagination pattern, and a
ranked list of widget recommendations.`,
	Version: "0.1.0",
}

// Execute adds all child commands and runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.schemaengine.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(paginateCmd)
	rootCmd.AddCommand(widgetsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig wires viper to an optional config file plus SCHEMAENGINE_*
// environment variables, the same precedence order the teacher's uds CLI
// establishes for its own root command.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".schemaengine")
		}
	}

	viper.SetEnvPrefix("SCHEMAENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

// initLogging installs a slog text handler at debug level when -v is set,
// info level otherwise. The engine itself never logs (§5); this is the one
// place in the repo that does.
func initLogging() {
	level := slog.LevelInfo
	if verbose || viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
