package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/okrenz/manuscan/internal/model"
)

// manuscriptExtensions are the file types batch mode picks up when given
// a directory.
var manuscriptExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// Engine analyzes one manuscript. Satisfied by pipeline.Pipeline through
// a thin adapter in the CLI; stubbed in tests.
type Engine interface {
	AnalyzeFile(ctx context.Context, path, genre string) (*model.Report, error)
}

// AnalyzeJob analyzes a single manuscript file.
type AnalyzeJob struct {
	Path   string
	Genre  string
	Engine Engine
}

// Execute implements Job.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Engine.AnalyzeFile(ctx, j.Path, j.Genre)
	return &AnalyzeResult{Path: j.Path, Report: report, Error: err}
}

// AnalyzeResult is the outcome of one batch entry.
type AnalyzeResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// Err implements Result.
func (r *AnalyzeResult) Err() error { return r.Error }

// BatchProcessor analyzes many manuscripts concurrently.
type BatchProcessor struct {
	engine      Engine
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(engine Engine, concurrency int) *BatchProcessor {
	return &BatchProcessor{engine: engine, concurrency: concurrency}
}

// ProcessPaths analyzes the given manuscript files concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, genre string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{Path: path, Genre: genre, Engine: b.engine})
	}

	results := pool.Wait()

	out := make([]*AnalyzeResult, len(results))
	for i, r := range results {
		out[i] = r.(*AnalyzeResult)
	}
	return out
}

// Process expands the input (a directory of manuscripts, or a list file
// with one path per line) and analyzes everything found.
func (b *BatchProcessor) Process(ctx context.Context, input, genre string) ([]*AnalyzeResult, error) {
	paths, err := CollectManuscripts(input)
	if err != nil {
		return nil, fmt.Errorf("collect manuscripts: %w", err)
	}
	return b.ProcessPaths(ctx, paths, genre), nil
}

// CollectManuscripts resolves a batch input into manuscript paths. A
// directory yields its manuscript files (non-recursive, sorted); anything
// else is read as a list file: one path per line, blank lines and #
// comments skipped, duplicates dropped.
func CollectManuscripts(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("read dir: %w", err)
		}
		var paths []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if manuscriptExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
				paths = append(paths, filepath.Join(input, e.Name()))
			}
		}
		sort.Strings(paths)
		return paths, nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read list file: %w", err)
	}

	var paths []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	return paths, nil
}
