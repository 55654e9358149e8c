package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/wordheat/internal/config"
	"github.com/KaramelBytes/wordheat/internal/freq"
	"github.com/KaramelBytes/wordheat/internal/render"
	"github.com/KaramelBytes/wordheat/internal/source"
)

var (
	// Global flags (override config if set)
	cfgFile   string
	flagFile  string
	flagLines int
	flagColor string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "wordheat [file]",
	Short: "WordHeat: colorize a text file by word frequency",
	Long: `WordHeat reads a text file, counts how often each word occurs across the
whole file, and prints the first 15 lines with every word colorized by its
frequency: blue for words seen once, green for words seen 2-5 times, red for
words seen more often.`,
	Args: cobra.MaximumNArgs(1),
}

// Assigned in init to avoid an initialization cycle: these closures call
// helpers that read rootCmd's flags.
func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		applyColorMode(colorMode())
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		content, err := source.LoadFile(inputPath(args))
		if err != nil {
			return err
		}
		table := freq.Count(content)
		for _, line := range render.Lines(content, table, maxLines()) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	}
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.wordheat/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "input file (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagLines, "lines", 0, "max lines to render (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "color mode: auto|always|never (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Default()
	}
	cfg = c
}

// inputPath resolves the file to analyze: positional arg > --file flag >
// config > built-in default.
func inputPath(args []string) string {
	if len(args) == 1 && args[0] != "" {
		return args[0]
	}
	if rootCmd.PersistentFlags().Changed("file") && flagFile != "" {
		return flagFile
	}
	if cfg != nil && cfg.InputFile != "" {
		return cfg.InputFile
	}
	return source.DefaultPath
}

func maxLines() int {
	if rootCmd.PersistentFlags().Changed("lines") && flagLines > 0 {
		return flagLines
	}
	if cfg != nil && cfg.MaxLines > 0 {
		return cfg.MaxLines
	}
	return render.DefaultMaxLines
}

func colorMode() string {
	if rootCmd.PersistentFlags().Changed("color") && flagColor != "" {
		return flagColor
	}
	if cfg != nil && cfg.Color != "" {
		return cfg.Color
	}
	return "auto"
}

// applyColorMode toggles ANSI emission globally. auto enables color only
// when stdout is a terminal.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // auto
		fd := os.Stdout.Fd()
		color.NoColor = !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	}
}
