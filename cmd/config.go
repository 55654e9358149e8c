package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/wordheat/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set WordHeat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("input_file: %s\n", cfg.InputFile)
		fmt.Printf("max_lines: %d\n", cfg.MaxLines)
		fmt.Printf("color: %s\n", cfg.Color)
		fmt.Printf("top_words: %d\n", cfg.TopWords)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "input_file":
			cfg.InputFile = val
		case "max_lines":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for max_lines: %v", val)
			}
			cfg.MaxLines = i
		case "color":
			if !cfgpkg.ValidColor(val) {
				return fmt.Errorf("invalid color mode: %s (use auto, always, or never)", val)
			}
			cfg.Color = val
		case "top_words":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for top_words: %v", val)
			}
			cfg.TopWords = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
