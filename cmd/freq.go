package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/wordheat/internal/freq"
	"github.com/KaramelBytes/wordheat/internal/render"
	"github.com/KaramelBytes/wordheat/internal/source"
)

var freqTop int

var freqCmd = &cobra.Command{
	Use:   "freq [file]",
	Short: "Show the most frequent words in a file",
	Args:  cobra.MaximumNArgs(1),
}

// Assigned in init to avoid an initialization cycle: the closure calls
// topWords, which reads freqCmd's flags.
func init() {
	freqCmd.RunE = func(cmd *cobra.Command, args []string) error {
		content, err := source.LoadFile(inputPath(args))
		if err != nil {
			return err
		}
		t := freq.Count(content)
		rows := t.Top(topWords())
		if len(rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "(no words)")
			return nil
		}

		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Word", "Count", "Bucket"})
		for _, wc := range rows {
			b := render.Classify(wc.Count, true)
			tw.AppendRow(table.Row{wc.Word, wc.Count, b.String()})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		})
		fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
		return nil
	}
}

func topWords() int {
	if freqCmd.Flags().Changed("top") && freqTop > 0 {
		return freqTop
	}
	if cfg != nil && cfg.TopWords > 0 {
		return cfg.TopWords
	}
	return 20
}

func init() {
	rootCmd.AddCommand(freqCmd)
	freqCmd.Flags().IntVar(&freqTop, "top", 0, "number of top words to show (overrides config)")
}
