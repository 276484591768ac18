// Package prompt provides interactive selection and confirmation.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// Select prompts the user to choose one option from a list.
	// Returns ErrNoSelection when the user quits without choosing.
	Select(title string, options []string) (string, error)

	// Confirm prompts the user for confirmation with a default value.
	Confirm(message string, defaultYes bool) (bool, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompter instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// Select prompts the user to choose one option from a list.
func (p *realPrompt) Select(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoSelection
	}

	return selectBubbleTea(title, options)
}

// Confirm prompts the user for confirmation with a default value.
func (p *realPrompt) Confirm(message string, defaultYes bool) (bool, error) {
	defaultText := "[y/N]"
	if defaultYes {
		defaultText = "[Y/n]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}
