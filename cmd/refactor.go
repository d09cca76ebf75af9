package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BRArjun/zor/pkg/config"
	"github.com/BRArjun/zor/pkg/editor"
	"github.com/BRArjun/zor/pkg/types"
	"github.com/BRArjun/zor/pkg/utils"
	"github.com/BRArjun/zor/pkg/workspace"
)

var (
	refactorRootDir    string
	refactorModel      string
	refactorSkipPrompt bool
)

var refactorCmd = &cobra.Command{
	Use:   "refactor [instructions]",
	Short: "Refactor the codebase based on instructions",
	Long: `Serializes the relevant parts of the codebase, asks the model for
whole-file replacements, previews the diffs, and applies them. Files and
directories that do not exist yet are created.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		instructions := args[0]
		logger := utils.InitLogger(refactorSkipPrompt)
		logger.Logf("User prompt: %s", instructions)
		start := time.Now()

		cfg, err := config.LoadOrInitConfig(refactorSkipPrompt)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if refactorModel != "" {
			cfg.Model = refactorModel
		}

		caller, opts, err := buildCaller(cfg)
		if err != nil {
			log.Fatalf("Failed to set up backend: %v", err)
		}

		logger.LogProcessStep("Collecting codebase context...")
		codebase, err := workspace.BuildContext(refactorRootDir, workspace.DefaultMaxContextBytes)
		if err != nil {
			log.Fatalf("Failed to build codebase context: %v", err)
		}
		if injected := workspace.InjectedContext(refactorRootDir); injected != "" {
			codebase = "[Project Context]\n" + injected + "\n\n" + codebase
		}
		if findings := workspace.ScanForSecrets(codebase); len(findings) > 0 {
			log.Fatalf("Refusing to send codebase context, possible secrets detected: %s. Remove them or exclude the files via .gitignore or .zor/.ignore.",
				strings.Join(findings, "; "))
		}

		orch := editor.NewOrchestrator(caller, opts)
		edits, err := orch.Refactor(context.Background(), types.Task{
			Description: instructions,
			Context:     codebase,
		})
		if err != nil {
			log.Fatalf("Refactor failed: %v", err)
		}

		fmt.Print(editor.PreviewDiffs(edits, refactorRootDir))
		if !logger.AskForConfirmation(fmt.Sprintf("Apply %d file edit(s)?", edits.Len()), true) {
			fmt.Println("Aborted.")
			return
		}

		report := editor.Apply(edits, refactorRootDir)
		printReport(report)
		printDuration(start)
	},
}

func init() {
	refactorCmd.Flags().StringVarP(&refactorRootDir, "dir", "d", ".", "Project root directory")
	refactorCmd.Flags().StringVarP(&refactorModel, "model", "m", "", "Model name to use with the LLM")
	refactorCmd.Flags().BoolVar(&refactorSkipPrompt, "skip-prompt", false, "Skip user prompts and apply changes directly")
}
