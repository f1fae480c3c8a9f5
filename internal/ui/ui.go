package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/sidekick-cli/sidekick/internal/assist"
)

// TTY is the bubbletea-backed UI used when stdout is a terminal.
type TTY struct{}

// Plain is the line-oriented fallback for pipes and dumb terminals. Menus
// are printed as numbered lists and choices read from the input stream.
type Plain struct {
	In  *bufio.Reader
	Out io.Writer
}

var (
	_ assist.UI = (*TTY)(nil)
	_ assist.UI = (*Plain)(nil)
)

// New picks the UI implementation for the current environment: the
// bubbletea one on a terminal, the numbered-menu fallback otherwise.
func New(in *bufio.Reader, out io.Writer) assist.UI {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return &TTY{}
	}
	return &Plain{In: in, Out: out}
}

// Select prints a numbered menu and reads the chosen number. Invalid input
// re-prompts; EOF cancels.
func (p *Plain) Select(title string, options []string) (int, error) {
	for {
		fmt.Fprintln(p.Out, titleStyle.Render(title))
		for i, opt := range options {
			fmt.Fprintf(p.Out, "%d. %s\n", i+1, opt)
		}
		fmt.Fprint(p.Out, "Choose an option: ")

		line, err := p.In.ReadString('\n')
		if err == io.EOF && line == "" {
			return -1, nil
		}
		if err != nil && err != io.EOF {
			return -1, fmt.Errorf("reading choice: %w", err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintln(p.Out, "Invalid option, please try again.")
		if err == io.EOF {
			return -1, nil
		}
	}
}

// Spin prints the message once; there is no live spinner without a terminal.
func (p *Plain) Spin(message string) func() {
	fmt.Fprintln(p.Out, message)
	return func() {}
}
