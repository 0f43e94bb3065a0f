package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okrenz/manuscan/internal/model"
	"github.com/okrenz/manuscan/internal/pipeline"
)

var (
	genre    string
	outJSON  string
	outMD    string
	noCache  bool
	noFooter bool
	maxBytes int64
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <manuscript>",
	Short: "Analyze a single manuscript and generate a scored report",
	Long: `Analyze runs the full heuristic pipeline over one manuscript file:
- Classify paragraph pacing and show-vs-tell balance
- Detect characters, arcs, themes, and genre tropes
- Score fiction elements and prose craft
- Aggregate everything into one weighted quality score with suggestions

Example:
  manuscan analyze chapter1.txt
  manuscan analyze chapter1.txt --genre fantasy --json report.json --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&genre, "genre", "", "genre label (fantasy, mystery, romance, thriller, ...)")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache (force fresh analysis)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 8_000_000, "max manuscript bytes to read")
}

// buildConfig layers flag overrides on top of the resolved file/env
// configuration. Only flags the user actually set override it.
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("max-bytes") {
		cfg.Analysis.MaxTextBytes = maxBytes
	}
	if cmd.Flags().Changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if cmd.Flags().Changed("no-footer") {
		cfg.Output.IncludeFooter = !noFooter
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = defaultCacheDir()
	}
	cfg.Output.Verbose = cfg.Output.Verbose || verbose
	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)
	loader := pipeline.NewLoader(cfg.Analysis.MaxTextBytes)

	manuscript, err := loader.Load(path, genre)
	if err != nil {
		return err
	}

	// Run through the async boundary so the CLI consumes the same
	// message stream a UI worker would.
	runner := pipeline.NewRunner(p, cfg.Progress)

	var report *model.Report
	for msg := range runner.Run(context.Background(), manuscript) {
		switch msg.Type {
		case pipeline.MessageProgress:
			if cfg.Output.Verbose {
				fmt.Fprintf(os.Stderr, "  [%s] %s\n", msg.Step, msg.Detail)
			}
		case pipeline.MessageError:
			return fmt.Errorf("analysis failed: %s", msg.Error)
		case pipeline.MessageComplete:
			report = msg.Result
		}
	}
	if report == nil {
		return fmt.Errorf("analysis produced no report")
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(report)
	return nil
}
