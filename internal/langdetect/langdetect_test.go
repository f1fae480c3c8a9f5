package langdetect

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"cpp include", "#include <iostream>\nint main() {}", "C++"},
		{"rust main", "fn main() {\n    println!(\"hi\");\n}", "Rust"},
		{"python def", "def handler(event):\n    return event", "Python"},
		{"javascript function", "function add(a, b) { return a + b; }", "JavaScript"},
		{"javascript console", "console.log('hi');", "JavaScript"},
		{"java main", "public static void main(String[] args) {}", "Java"},
		{"empty", "", Unknown},
		{"prose", "this is not code", Unknown},
		// #include wins over later markers when both appear.
		{"cpp beats python marker", "#include <x>\ndef y", "C++"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.code); got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	code := "def main():\n    pass"
	if !Matches(code, "Python") {
		t.Error("Python code should match Python")
	}
	if !Matches(code, "python") {
		t.Error("Matching should ignore ASCII case")
	}
	if Matches(code, "Rust") {
		t.Error("Python code should not match Rust")
	}
	if Matches("no markers here", "Python") {
		t.Error("Undetectable code should not match")
	}
}

func TestIsSupported(t *testing.T) {
	for _, lang := range []string{"Python", "rust", "JAVASCRIPT", "c++", "Java"} {
		if !IsSupported(lang) {
			t.Errorf("IsSupported(%q) = false, want true", lang)
		}
	}
	for _, lang := range []string{"", "Go", "Haskell"} {
		if IsSupported(lang) {
			t.Errorf("IsSupported(%q) = true, want false", lang)
		}
	}
}
