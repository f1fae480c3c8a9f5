package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sidekick-cli/sidekick/internal/assist"
	"github.com/sidekick-cli/sidekick/internal/cache"
	"github.com/sidekick-cli/sidekick/internal/config"
	"github.com/sidekick-cli/sidekick/internal/langdetect"
	"github.com/sidekick-cli/sidekick/internal/output"
	"github.com/sidekick-cli/sidekick/internal/providers"
)

var (
	flagAskFile   string
	flagAskFormat string
	flagAskOut    string
)

var askCmd = &cobra.Command{
	Use:   "ask <task>",
	Short: "Run a single task non-interactively",
	Long: `Ask runs one task (completion, explanation, refactor, or help) without the
menu loop. Code is read from stdin or --file; the reply goes to stdout or
--out. The same prompt cache as the interactive session is consulted and
updated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := assist.ParseTask(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		if flagNoRedact {
			cfg.Privacy.RedactSecrets = false
			fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
		}
		if flagAskFormat != "" {
			cfg.Format = flagAskFormat
		}

		var code string
		if task.NeedsCode() {
			code, err = readAskCode()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
		}

		if task.NeedsCode() {
			if cfg.Language == "" {
				cfg.Language = langdetect.Detect(code)
				if cfg.Language == langdetect.Unknown {
					return fmt.Errorf("could not detect the language; pass --language")
				}
			} else if !langdetect.Matches(code, cfg.Language) {
				fmt.Fprintln(os.Stderr, "The detected language in the code does not match the specified language. Aborting.")
				exitCode = ExitRuntimeError
				return nil
			}
		} else if cfg.Language == "" {
			return fmt.Errorf("the help task needs a language; pass --language")
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

		session := &assist.Session{
			Config:   cfg,
			Cache:    promptCache,
			Provider: provider,
			In:       bufio.NewReader(os.Stdin),
			Out:      os.Stderr,
		}

		res, err := session.Execute(context.Background(), task, code)
		if err != nil {
			if providers.IsAuthError(err) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitAuthError
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
			}
			return nil
		}

		if err := output.WriteResult(res, cfg.Format, flagAskOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if flagCopy {
			if err := clipboard.WriteAll(res.Response); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
			}
		}

		if err := promptCache.Save(cachePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving cache: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		return nil
	},
}

// readAskCode reads the snippet from --file when given, stdin otherwise.
func readAskCode() (string, error) {
	if flagAskFile != "" {
		data, err := os.ReadFile(flagAskFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", flagAskFile, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	addSessionFlags(askCmd)
	askCmd.Flags().StringVar(&flagAskFile, "file", "", "Read code from a file instead of stdin")
	askCmd.Flags().StringVar(&flagAskFormat, "format", "", "Output format (text, markdown, json)")
	askCmd.Flags().StringVar(&flagAskOut, "out", "", "Output file path (default: stdout)")
}
