package session

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt
var ErrAborted = errors.New("session aborted")

// Prompter abstracts the terminal prompts so the editor can be driven
// without a real terminal.
type Prompter interface {
	// Input asks for free text; validate may be nil
	Input(message, def string, validate func(string) error) (string, error)
	// Select returns the index of the chosen option
	Select(message string, options []string, def int) (int, error)
	Confirm(message string, def bool) (bool, error)
}

// SurveyPrompter prompts on the terminal
type SurveyPrompter struct {
	PageSize int
}

func (s SurveyPrompter) Input(message, def string, validate func(string) error) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: def}
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			str, ok := ans.(string)
			if !ok {
				return fmt.Errorf("expected text, got %T", ans)
			}
			return validate(str)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (s SurveyPrompter) Select(message string, options []string, def int) (int, error) {
	var out int
	prompt := &survey.Select{Message: message, Options: options}
	if s.PageSize > 0 {
		prompt.PageSize = s.PageSize
	}
	if def >= 0 && def < len(options) {
		prompt.Default = options[def]
	}
	// survey writes the chosen index into an int target
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

func (s SurveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
