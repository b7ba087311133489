package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/exgen-dev/exgen/pkg/models"
)

// Run executes the wizard and returns the collected answers.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question) (*models.Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := &models.Answers{}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		g := buildQuestionGroup(q, answers)
		form := huh.NewForm(g).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return answers, nil
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, answers *models.Answers) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeInput:
		field = buildInputField(q, answers)
	case QuestionTypeConfirm:
		field = buildConfirmField(q, answers)
	}

	return huh.NewGroup(field)
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, answers *models.Answers) *huh.Input {
	var value string
	if q.Default != "" {
		value = q.Default
	}

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	// Value storage happens during validation so an empty submit still
	// lands on the default.
	qID := q.ID
	defVal := q.Default
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = defVal
		}
		if v == "" {
			return errors.New("a value is required")
		}
		applyAnswer(qID, v, answers)
		return nil
	})

	return inp
}

// buildConfirmField creates a huh.Confirm field for a yes/no question.
func buildConfirmField(q *Question, answers *models.Answers) *huh.Confirm {
	value := q.DefaultBool

	qID := q.ID
	return huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Validate(func(val bool) error {
			applyToggle(qID, val, answers)
			return nil
		})
}

// applyAnswer stores an input answer by question ID.
func applyAnswer(id, value string, answers *models.Answers) {
	switch id {
	case "project_name":
		answers.ProjectName = value
	}
}

// applyToggle stores a confirm answer by question ID.
func applyToggle(id string, value bool, answers *models.Answers) {
	switch id {
	case "use_cors":
		answers.UseCors = value
	case "use_error_handler":
		answers.UseErrorHandler = value
	case "use_env_file":
		answers.UseEnvFile = value
	}
}

// newWizardTheme creates a huh.Theme with exgen branding.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#3C873A", Dark: "#68A063"}
	secondary := lipgloss.AdaptiveColor{Light: "#1F6E43", Dark: "#8CC84B"}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(primary).Bold(true).MarginBottom(1)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.NextIndicator = t.Focused.NextIndicator.Foreground(primary)
	t.Focused.PrevIndicator = t.Focused.PrevIndicator.Foreground(primary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
