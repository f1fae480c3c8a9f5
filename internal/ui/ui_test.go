package ui

import (
	"bufio"
	"strings"
	"testing"
)

func TestPlain_Select(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"first option", "1\n", 0},
		{"last option", "3\n", 2},
		{"retry after invalid", "nope\n2\n", 1},
		{"retry after out of range", "9\n2\n", 1},
		{"eof cancels", "", -1},
	}
	options := []string{"a", "b", "c"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := &Plain{In: bufio.NewReader(strings.NewReader(tt.input)), Out: &out}
			got, err := p.Select("Pick", options)
			if err != nil {
				t.Fatalf("Select error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Select = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPlain_SelectPrintsMenu(t *testing.T) {
	var out strings.Builder
	p := &Plain{In: bufio.NewReader(strings.NewReader("2\n")), Out: &out}
	if _, err := p.Select("AI Code Assistant", []string{"Code Completion", "Exit"}); err != nil {
		t.Fatal(err)
	}
	menu := out.String()
	for _, want := range []string{"AI Code Assistant", "1. Code Completion", "2. Exit", "Choose an option:"} {
		if !strings.Contains(menu, want) {
			t.Errorf("menu missing %q: %q", want, menu)
		}
	}
}

func TestPlain_SpinStopIsSafe(t *testing.T) {
	var out strings.Builder
	p := &Plain{In: bufio.NewReader(strings.NewReader("")), Out: &out}
	stop := p.Spin("waiting")
	stop()
	if !strings.Contains(out.String(), "waiting") {
		t.Errorf("spin message missing: %q", out.String())
	}
}
