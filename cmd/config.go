package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wayfind/internal/config"
	"wayfind/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one config value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ui.Header("wayfind config")
	for _, key := range configKeys() {
		value, _ := configValue(cfg, key)
		ui.Kv(key, value)
	}
	fmt.Println()
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	value, err := configValue(cfg, args[0])
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyConfigValue(cfg, args[0], args[1]); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	ui.Ok(fmt.Sprintf("Set %s = %s", args[0], args[1]))
	return nil
}

func configKeys() []string {
	return []string{"search.case_sensitive", "search.limit", "scan.depth"}
}

func configValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "search.case_sensitive":
		return strconv.FormatBool(cfg.Search.CaseSensitive), nil
	case "search.limit":
		return strconv.Itoa(cfg.Search.Limit), nil
	case "scan.depth":
		return strconv.Itoa(cfg.Scan.Depth), nil
	default:
		return "", fmt.Errorf("unknown key %q", key)
	}
}

func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "search.case_sensitive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s wants true or false, got %q", key, value)
		}
		cfg.Search.CaseSensitive = b
	case "search.limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s wants a non-negative integer, got %q", key, value)
		}
		cfg.Search.Limit = n
	case "scan.depth":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%s wants a positive integer, got %q", key, value)
		}
		cfg.Scan.Depth = n
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}
