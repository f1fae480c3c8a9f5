package assist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sidekick-cli/sidekick/internal/cache"
	"github.com/sidekick-cli/sidekick/internal/config"
	"github.com/sidekick-cli/sidekick/internal/langdetect"
	"github.com/sidekick-cli/sidekick/internal/providers"
	"github.com/sidekick-cli/sidekick/internal/redact"
)

// UI abstracts the interactive prompts so the session can run against the
// bubbletea implementation, the plain-stdin fallback, or a test fake.
type UI interface {
	// Select shows a single-choice menu and returns the chosen index,
	// or -1 if the user cancelled.
	Select(title string, options []string) (int, error)
	// Spin shows a progress indicator until the returned stop func is called.
	Spin(message string) func()
}

// Result is the outcome of one executed task.
type Result struct {
	Task     Task   `json:"task"`
	Language string `json:"language"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Response string `json:"response"`
	Cached   bool   `json:"cached"`
	RTTMs    int64  `json:"rttMs"`
}

// Session drives the interactive assistant. It owns the prompt cache for the
// whole process lifetime: the CLI loads the cache, passes it in by reference,
// and saves it exactly once after Run returns. Abnormal termination skips
// that save; mutations are never flushed mid-session.
type Session struct {
	Config   config.Config
	Cache    *cache.Cache
	Provider providers.Chatter
	In       *bufio.Reader
	Out      io.Writer
	UI       UI

	// Clipboard, when set, receives every response for copying.
	Clipboard func(string) error
}

// Execute runs one task through the look-aside cache: render the prompt,
// return a cached reply if the exact prompt was seen before, otherwise call
// the provider and insert the new pair. Redaction happens before rendering
// so the cache key is stable for a given snippet.
func (s *Session) Execute(ctx context.Context, task Task, code string) (Result, error) {
	if task.NeedsCode() && s.Config.Privacy.RedactSecrets {
		code = redact.Secrets(code)
	}
	prompt := BuildPrompt(task, s.Config.Language, code)

	res := Result{
		Task:     task,
		Language: s.Config.Language,
		Provider: s.Provider.Name(),
		Model:    s.Config.Model,
	}

	if response, ok := s.Cache.Lookup(prompt); ok {
		res.Response = response
		res.Cached = true
		return res, nil
	}

	stop := s.spin(fmt.Sprintf("Waiting for %s...", s.Provider.Name()))
	start := time.Now()
	resp, err := s.Provider.Chat(ctx, providers.ChatRequest{
		Prompt:      prompt,
		Temperature: s.Config.Temperature,
		TopP:        s.Config.TopP,
		MaxTokens:   s.Config.MaxTokens,
	})
	stop()
	if err != nil {
		return Result{}, fmt.Errorf("provider chat: %w", err)
	}

	s.Cache.Insert(prompt, resp.Content)
	res.Response = resp.Content
	res.RTTMs = time.Since(start).Milliseconds()
	return res, nil
}

// Run drives the menu loop until the user exits or input ends. The caller
// saves the cache afterwards.
func (s *Session) Run(ctx context.Context) error {
	if err := s.ensureLanguage(); err != nil {
		return err
	}

	options := make([]string, 0, len(Tasks())+1)
	for _, t := range Tasks() {
		options = append(options, t.MenuLabel())
	}
	options = append(options, "Exit")

	for {
		idx, err := s.UI.Select("AI Code Assistant", options)
		if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}
		if idx < 0 || idx >= len(Tasks()) {
			return nil
		}
		task := Tasks()[idx]

		var code string
		if task.NeedsCode() {
			code, err = s.readCode()
			if err != nil {
				return err
			}
			if code == "" {
				continue
			}
			if !langdetect.Matches(code, s.Config.Language) {
				fmt.Fprintln(s.Out, "The detected language in the code does not match the specified language. Aborting.")
				continue
			}
		}

		res, err := s.Execute(ctx, task, code)
		if err != nil {
			return err
		}
		s.printResult(res)
	}
}

// ensureLanguage prompts for a language when the config does not already
// carry a valid one.
func (s *Session) ensureLanguage() error {
	if langdetect.IsSupported(s.Config.Language) {
		return nil
	}
	idx, err := s.UI.Select("Which language are you working with?", langdetect.Supported())
	if err != nil {
		return fmt.Errorf("reading language choice: %w", err)
	}
	if idx < 0 {
		return fmt.Errorf("a language is required")
	}
	s.Config.Language = langdetect.Supported()[idx]
	return nil
}

// readCode collects the snippet to operate on, either typed line by line
// until an END marker or read from the configured code file. An empty string
// return (with nil error) means the user backed out.
func (s *Session) readCode() (string, error) {
	idx, err := s.UI.Select("Code input", []string{
		"Manual input (finish with END on its own line)",
		fmt.Sprintf("Read from %s", s.Config.CodeFile),
	})
	if err != nil {
		return "", fmt.Errorf("reading input choice: %w", err)
	}
	switch idx {
	case 0:
		fmt.Fprintln(s.Out, "Enter your code (type 'END' on a new line when finished):")
		var b strings.Builder
		for {
			line, err := s.In.ReadString('\n')
			if strings.TrimSpace(strings.TrimSuffix(line, "\n")) == "END" {
				break
			}
			b.WriteString(line)
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", fmt.Errorf("reading code: %w", err)
			}
		}
		return b.String(), nil
	case 1:
		data, err := os.ReadFile(s.Config.CodeFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", s.Config.CodeFile, err)
		}
		return string(data), nil
	default:
		return "", nil
	}
}

func (s *Session) printResult(res Result) {
	if res.Cached {
		fmt.Fprintln(s.Out, "Using cached response:")
	}
	fmt.Fprintln(s.Out, res.Response)
	if s.Clipboard != nil {
		if err := s.Clipboard(res.Response); err != nil {
			fmt.Fprintf(s.Out, "(could not copy to clipboard: %v)\n", err)
		} else {
			fmt.Fprintln(s.Out, "(copied to clipboard)")
		}
	}
}

func (s *Session) spin(message string) func() {
	if s.UI == nil {
		return func() {}
	}
	return s.UI.Spin(message)
}
