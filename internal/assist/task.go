package assist

import "fmt"

// Task identifies one of the four fixed assistant tasks.
type Task string

const (
	TaskCompletion  Task = "completion"
	TaskExplanation Task = "explanation"
	TaskRefactor    Task = "refactor"
	TaskHelp        Task = "help"
)

// Tasks returns all tasks in menu order.
func Tasks() []Task {
	return []Task{TaskCompletion, TaskExplanation, TaskRefactor, TaskHelp}
}

// ParseTask maps a CLI argument to a Task.
func ParseTask(s string) (Task, error) {
	switch s {
	case "completion", "complete":
		return TaskCompletion, nil
	case "explanation", "explain":
		return TaskExplanation, nil
	case "refactor", "refactoring":
		return TaskRefactor, nil
	case "help":
		return TaskHelp, nil
	default:
		return "", fmt.Errorf("unknown task %q (want completion, explanation, refactor, or help)", s)
	}
}

// NeedsCode reports whether the task operates on a user-supplied snippet.
// The help task renders a static prompt with no code body.
func (t Task) NeedsCode() bool {
	return t != TaskHelp
}

// MenuLabel returns the label shown in the interactive menu.
func (t Task) MenuLabel() string {
	switch t {
	case TaskCompletion:
		return "Code Completion"
	case TaskExplanation:
		return "Code Explanation"
	case TaskRefactor:
		return "Refactoring Suggestions"
	case TaskHelp:
		return "Help: How to Use"
	default:
		return string(t)
	}
}

// BuildPrompt renders the full request text for a task. The result is the
// cache key, so the templates are fixed: identical task, language, and code
// must always produce byte-identical prompts.
func BuildPrompt(t Task, language, code string) string {
	switch t {
	case TaskCompletion:
		return fmt.Sprintf("You are working with %s code. Your task is to complete the given code:\n\n%s", language, code)
	case TaskExplanation:
		return fmt.Sprintf("You are working with %s code. Your task is to explain the following code:\n\n%s", language, code)
	case TaskRefactor:
		return fmt.Sprintf("You are working with %s code. Your task is to provide refactoring suggestions for the following code:\n\n%s", language, code)
	case TaskHelp:
		return fmt.Sprintf("You are working with %s code. Please provide a brief explanation on how to use the features of this AI Code Assistant, including code completion, code explanation, and refactoring suggestions.", language)
	default:
		return ""
	}
}
