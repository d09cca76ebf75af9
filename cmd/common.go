package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BRArjun/zor/pkg/config"
	"github.com/BRArjun/zor/pkg/llm"
	"github.com/BRArjun/zor/pkg/types"
)

// buildCaller wires the configured backend into a resilient caller plus the
// per-call generation options.
func buildCaller(cfg *config.Config) (*llm.Caller, llm.Options, error) {
	var backend llm.Backend
	var err error
	if llm.IsOllamaModel(cfg.Model) {
		backend, err = llm.NewOllamaBackend(cfg.OllamaServerURL)
	} else {
		backend, err = llm.NewOpenAIBackend(cfg.APIKey, cfg.OpenAIBaseURL)
	}
	if err != nil {
		return nil, llm.Options{}, err
	}

	caller := llm.NewCaller(backend, cfg.MaxRetries, cfg.BaseRetryDelay())
	opts := llm.Options{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
	return caller, opts, nil
}

var titleCaser = cases.Title(language.English)

func printPlan(plan *types.ProjectPlan) {
	heading := color.New(color.FgYellow, color.Bold)

	heading.Println(titleCaser.String(plan.ProjectType))
	if len(plan.Technologies) > 0 {
		fmt.Printf("Technologies: %s\n", strings.Join(plan.Technologies, ", "))
	}
	printSection("Architecture", plan.Architecture)
	printSection("Plan", plan.PlanBody)
	printSection("Dependencies", plan.Dependencies)
	printSection("File structure", plan.FileStructure)
	printSection("Recommendations", plan.Recommendations)
	if plan.HasScaffold() {
		fmt.Printf("\nScaffold: %s (%s)\n", plan.ScaffoldCommand, plan.ScaffoldType)
	}
}

func printSection(title, body string) {
	if body == "" {
		return
	}
	color.New(color.Bold).Printf("\n%s\n", title)
	fmt.Println(body)
}

func printReport(report *types.AppliedEditReport) {
	for _, path := range report.Applied {
		color.Green("  applied  %s", path)
	}
	for _, failed := range report.Failed {
		color.Red("  failed   %s: %v", failed.Path, failed.Err)
	}
	fmt.Println(report.Summary())
}

func printDuration(start time.Time) {
	fmt.Printf("Done in %s\n", time.Since(start).Round(time.Millisecond))
}
