package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd manages the CLI's analyzer-threshold configuration file.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage schemaengine CLI configuration",
	Long:  `View or initialize the config file that overrides analyzer thresholds (low-sample warning, sample-size damping, locale) without code changes.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings := viper.AllSettings()
	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("format configuration: %w", err)
	}
	fmt.Println(string(out))
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Println("config file:", used)
	} else {
		fmt.Println("no config file found; using defaults and environment variables")
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	target := filepath.Join(home, ".schemaengine.yaml")
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("config file already exists: %s", target)
	}

	defaults := map[string]any{
		"locale":                 "en",
		"min-sample-warning":     5,
		"sample-size-damping-k":  20,
		"verbose":                false,
	}
	data, err := yaml.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	fmt.Println("wrote", target)
	return nil
}
