package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/okrenz/manuscan/internal/model"
)

// Renderer writes analysis reports as JSON and Markdown and prints the
// stdout summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report: score table, findings,
// and suggestions ordered by priority.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Manuscript Analysis: %s\n\n", report.ChapterID)
	fmt.Fprintf(&b, "- **Overall score:** %.0f/100\n", report.OverallScore)
	fmt.Fprintf(&b, "- **Genre:** %s\n", report.Genre)
	fmt.Fprintf(&b, "- **Word count:** %d\n", report.WordCount)
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Principle Scores\n\n")
	b.WriteString("| Principle | Score | Weight |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, p := range report.PrincipleScores {
		fmt.Fprintf(&b, "| %s | %.0f | %.1f |\n", p.DisplayName, p.Score, p.Weight)
	}
	b.WriteString("\n")

	suggestions := collectSuggestions(report)
	if len(suggestions) > 0 {
		b.WriteString("## Suggestions\n\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "### [%s] %s\n\n", strings.ToUpper(string(s.Priority)), s.Title)
			fmt.Fprintf(&b, "%s\n\n", s.Description)
			if s.Implementation != "" {
				fmt.Fprintf(&b, "*How:* %s\n\n", s.Implementation)
			}
			if s.ExpectedImpact != "" {
				fmt.Fprintf(&b, "*Impact:* %s\n\n", s.ExpectedImpact)
			}
		}
	}

	b.WriteString("## Findings\n\n")
	for _, p := range report.PrincipleScores {
		if len(p.Details) == 0 {
			continue
		}
		fmt.Fprintf(&b, "**%s (%.0f)**\n\n", p.DisplayName, p.Score)
		for _, d := range p.Details {
			fmt.Fprintf(&b, "- %s\n", d)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\n")
		b.WriteString("Generated by manuscan. Scores are heuristic diagnostics, not editorial judgment.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints the short stdout summary.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n")
	fmt.Printf("  Manuscript:    %s\n", report.ChapterID)
	fmt.Printf("  Overall score: %.0f/100\n", report.OverallScore)
	fmt.Printf("  Principles:    %d scored\n", len(report.PrincipleScores))

	high := 0
	for _, p := range report.PrincipleScores {
		for _, s := range p.Suggestions {
			if s.Priority == model.PriorityHigh {
				high++
			}
		}
	}
	if high > 0 {
		fmt.Printf("  High priority: %d suggestions\n", high)
	}
	fmt.Printf("\n")
}

// collectSuggestions flattens suggestions across principles, high
// priority first, stable within a band.
func collectSuggestions(report *model.Report) []model.Suggestion {
	var all []model.Suggestion
	for _, p := range report.PrincipleScores {
		all = append(all, p.Suggestions...)
	}
	rank := map[model.Priority]int{
		model.PriorityHigh:   0,
		model.PriorityMedium: 1,
		model.PriorityLow:    2,
	}
	sort.SliceStable(all, func(i, j int) bool {
		return rank[all[i].Priority] < rank[all[j].Priority]
	})
	return all
}
