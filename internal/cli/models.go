package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type modelInfo struct {
	Provider string
	Models   []string
}

var knownModels = []modelInfo{
	{
		Provider: "azure",
		Models: []string{
			"gpt-4o",
			"gpt-4o-mini",
			"gpt-4.1",
			"gpt-35-turbo",
		},
	},
	{
		Provider: "openai",
		Models: []string{
			"gpt-4o",
			"gpt-4o-mini",
			"gpt-4.1",
			"gpt-4.1-mini",
		},
	},
	{
		Provider: "ollama",
		Models: []string{
			"llama3.1",
			"codellama",
			"qwen2.5-coder",
			"deepseek-coder-v2",
		},
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known providers and models",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range knownModels {
			fmt.Fprintf(os.Stdout, "%s:\n", info.Provider)
			for _, m := range info.Models {
				fmt.Fprintf(os.Stdout, "  %s\n", m)
			}
		}
	},
}
