// Package wizard provides the interactive prompt flow that collects
// project generation answers before scaffolding begins.
package wizard

import "errors"

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeInput is a free text input question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeConfirm is a yes/no toggle question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string       // Unique identifier
	Type        QuestionType // Input or Confirm
	Title       string       // Question title
	Description string       // Additional description
	Default     string       // Default value for input questions
	DefaultBool bool         // Default value for confirm questions
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
