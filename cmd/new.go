package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/BRArjun/zor/pkg/config"
	"github.com/BRArjun/zor/pkg/editor"
	"github.com/BRArjun/zor/pkg/planner"
	"github.com/BRArjun/zor/pkg/scaffold"
	"github.com/BRArjun/zor/pkg/types"
	"github.com/BRArjun/zor/pkg/utils"
)

var (
	newTargetDir  string
	newModel      string
	newSkipPrompt bool
)

var newCmd = &cobra.Command{
	Use:   "new [description]",
	Short: "Plan, scaffold and generate a new project",
	Long: `Synthesizes a project plan from the description, runs the plan's
scaffold command (if any) in the target directory, then generates and
overlays the project's initial files.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		description := args[0]
		logger := utils.InitLogger(newSkipPrompt)
		logger.Logf("User prompt: %s", description)
		start := time.Now()

		cfg, err := config.LoadOrInitConfig(newSkipPrompt)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if newModel != "" {
			cfg.Model = newModel
		}

		caller, opts, err := buildCaller(cfg)
		if err != nil {
			log.Fatalf("Failed to set up backend: %v", err)
		}

		ctx := context.Background()
		synth := planner.NewSynthesizer(caller, opts)
		plan, err := synth.Plan(ctx, types.Task{Description: description})
		if err != nil {
			log.Fatalf("Planning failed: %v", err)
		}
		printPlan(plan)

		if !logger.AskForConfirmation("Proceed with scaffolding and file generation?", true) {
			fmt.Println("Aborted.")
			return
		}

		result, err := scaffold.Run(ctx, plan, newTargetDir)
		if err != nil {
			if errors.Is(err, scaffold.ErrDirectoryNotEmpty) {
				log.Fatalf("Scaffold aborted: %v", err)
			}
			log.Fatalf("Scaffold failed to start: %v", err)
		}
		if result.Failed() {
			color.Yellow("Scaffold command exited with code %d; continuing with file generation.", result.ExitCode)
			logger.Logf("Scaffold output:\n%s", result.Output)
		}

		orch := editor.NewOrchestrator(caller, opts)
		edits, err := orch.GenerateFiles(ctx, types.Task{Description: description}, planner.Summary(plan))
		if err != nil {
			log.Fatalf("File generation failed: %v", err)
		}

		fmt.Print(editor.PreviewDiffs(edits, newTargetDir))
		if !logger.AskForConfirmation(fmt.Sprintf("Write %d file(s) to %s?", edits.Len(), newTargetDir), true) {
			fmt.Println("Aborted.")
			return
		}

		report := editor.Apply(edits, newTargetDir)
		printReport(report)
		printDuration(start)
	},
}

func init() {
	newCmd.Flags().StringVarP(&newTargetDir, "dir", "d", ".", "Target directory for the new project")
	newCmd.Flags().StringVarP(&newModel, "model", "m", "", "Model name to use with the LLM")
	newCmd.Flags().BoolVar(&newSkipPrompt, "skip-prompt", false, "Skip user prompts and apply changes directly")
}
