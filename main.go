package main

import (
	"os"

	"github.com/BRArjun/zor/cmd"
	"github.com/BRArjun/zor/pkg/utils"
)

func main() {
	logger := utils.GetLogger()
	defer func() {
		if err := logger.Close(); err != nil {
			os.Stderr.WriteString("Error closing logger: " + err.Error() + "\n")
		}
	}()

	if err := cmd.Execute(); err != nil {
		logger.Logf("Application error: %v", err)
		os.Exit(1)
	}
}
