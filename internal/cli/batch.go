package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okrenz/manuscan/internal/model"
	"github.com/okrenz/manuscan/internal/pipeline"
	"github.com/okrenz/manuscan/internal/worker"
)

var (
	concurrency int
	outputDir   string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir-or-list>",
	Short: "Analyze multiple manuscripts in parallel",
	Long: `Batch analyzes many manuscripts concurrently:
- Input is a directory of .txt/.md files, or a list file (one path per line)
- Manuscripts are analyzed in parallel with a configurable worker count
- Each manuscript gets its own JSON and Markdown report in the output dir

Example:
  manuscan batch ./chapters
  manuscan batch chapters.txt --concurrency 8 --output-dir ./reports
  manuscan batch ./chapters --genre mystery`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./manuscan-reports", "output directory for reports")
	batchCmd.Flags().StringVar(&genre, "genre", "", "genre label applied to every manuscript")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 8_000_000, "max manuscript bytes to read")
}

// batchEngine adapts the pipeline to the worker.Engine interface.
type batchEngine struct {
	pipeline *pipeline.Pipeline
	loader   *pipeline.Loader
}

func (e *batchEngine) AnalyzeFile(ctx context.Context, path, genre string) (*model.Report, error) {
	manuscript, err := e.loader.Load(path, genre)
	if err != nil {
		return nil, err
	}
	return e.pipeline.Analyze(ctx, manuscript, nil)
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Manuscan batch\n")
	fmt.Fprintf(os.Stderr, "  Input:      %s\n", input)
	fmt.Fprintf(os.Stderr, "  Workers:    %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Output dir: %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	engine := &batchEngine{
		pipeline: pipeline.NewPipeline(cfg),
		loader:   pipeline.NewLoader(cfg.Analysis.MaxTextBytes),
	}
	processor := worker.NewBatchProcessor(engine, cfg.Concurrency.Workers)

	results, err := processor.Process(context.Background(), input, genre)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	succeeded, failed := 0, 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", r.Path, r.Error)
			continue
		}
		succeeded++

		base := strings.TrimSuffix(filepath.Base(r.Path), filepath.Ext(r.Path))
		jsonPath := filepath.Join(outputDir, base+".json")
		mdPath := filepath.Join(outputDir, base+".md")
		if err := renderer.RenderJSON(r.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", r.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(r.Report, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", r.Path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "  ✓ %s: %.0f/100\n", r.Path, r.Report.OverallScore)
	}

	fmt.Fprintf(os.Stderr, "\n  %d analyzed, %d failed\n\n", succeeded, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d manuscripts failed", failed, succeeded+failed)
	}
	return nil
}
