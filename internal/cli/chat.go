package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sidekick-cli/sidekick/internal/assist"
	"github.com/sidekick-cli/sidekick/internal/cache"
	"github.com/sidekick-cli/sidekick/internal/config"
	"github.com/sidekick-cli/sidekick/internal/providers"
	"github.com/sidekick-cli/sidekick/internal/ui"
)

// Shared flags
var (
	flagProvider  string
	flagModel     string
	flagEndpoint  string
	flagLanguage  string
	flagCachePath string
	flagMaxTokens int
	flagNoRedact  bool
	flagCopy      bool
)

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (azure, openai, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Chat-completions endpoint URL")
	cmd.Flags().StringVar(&flagLanguage, "language", "", "Programming language of the code")
	cmd.Flags().StringVar(&flagCachePath, "cache", "", "Cache file path")
	cmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum response tokens")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy responses to the clipboard")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagEndpoint != "" {
		m["endpoint"] = flagEndpoint
	}
	if flagLanguage != "" {
		m["language"] = flagLanguage
	}
	if flagCachePath != "" {
		m["cachePath"] = flagCachePath
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = fmt.Sprintf("%d", flagMaxTokens)
	}
	return m
}

// resolveCachePath returns the cache file location: configured path if set,
// otherwise the per-user default.
func resolveCachePath(cfg config.Config) (string, error) {
	if cfg.Cache.Path != "" {
		return cfg.Cache.Path, nil
	}
	return cache.DefaultPath()
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive assistant session",
	Long:  "Chat runs the interactive menu loop: pick a task, supply code, get a reply. Replies are cached by prompt and the cache is saved when the session ends.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		if flagNoRedact {
			cfg.Privacy.RedactSecrets = false
			fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
		}

		cachePath, err := resolveCachePath(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		promptCache, err := cache.Load(cachePath, cfg.Cache.Limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		provider, err := providers.New(cfg.Provider, cfg.Model, cfg.Endpoint)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		in := bufio.NewReader(os.Stdin)
		session := &assist.Session{
			Config:   cfg,
			Cache:    promptCache,
			Provider: provider,
			In:       in,
			Out:      os.Stdout,
			UI:       ui.New(in, os.Stdout),
		}
		if flagCopy {
			session.Clipboard = clipboard.WriteAll
		}

		runErr := session.Run(context.Background())
		if runErr != nil {
			if providers.IsAuthError(runErr) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
				exitCode = ExitAuthError
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
				exitCode = ExitRuntimeError
			}
			// Fall through: a session that already paid for responses
			// should still try to keep them.
		}

		if err := promptCache.Save(cachePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving cache: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		return nil
	},
}

func init() {
	addSessionFlags(chatCmd)
}
