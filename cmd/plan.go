package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/BRArjun/zor/pkg/config"
	"github.com/BRArjun/zor/pkg/planner"
	"github.com/BRArjun/zor/pkg/types"
	"github.com/BRArjun/zor/pkg/utils"
)

var planModel string

var planCmd = &cobra.Command{
	Use:   "plan [description]",
	Short: "Synthesize a project plan from a description",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		description := args[0]
		logger := utils.InitLogger(true)
		logger.Logf("User prompt: %s", description)

		cfg, err := config.LoadOrInitConfig(true)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if planModel != "" {
			cfg.Model = planModel
		}

		caller, opts, err := buildCaller(cfg)
		if err != nil {
			log.Fatalf("Failed to set up backend: %v", err)
		}

		synth := planner.NewSynthesizer(caller, opts)
		plan, err := synth.Plan(context.Background(), types.Task{Description: description})
		if err != nil {
			log.Fatalf("Planning failed: %v", err)
		}

		printPlan(plan)
	},
}

func init() {
	planCmd.Flags().StringVarP(&planModel, "model", "m", "", "Model name to use with the LLM")
}
