package domain

import (
	"fmt"
	"strings"
)

// MenuChoice is one of the four top-level workflow actions.
type MenuChoice int

// Menu choices, numbered as presented to the user.
const (
	ChoiceBuildOnly MenuChoice = iota + 1
	ChoicePublishStaging
	ChoicePublishProduction
	ChoiceCleanOnly
)

// menuLabels maps choices to the text shown in the menu.
var menuLabels = map[MenuChoice]string{
	ChoiceBuildOnly:         "Build package only",
	ChoicePublishStaging:    "Build and upload to TestPyPI",
	ChoicePublishProduction: "Build and upload to PyPI (production)",
	ChoiceCleanOnly:         "Clean build artifacts",
}

// Label returns the menu text for the choice.
func (c MenuChoice) Label() string {
	return menuLabels[c]
}

// AllChoices returns the choices in menu order.
func AllChoices() []MenuChoice {
	return []MenuChoice{
		ChoiceBuildOnly,
		ChoicePublishStaging,
		ChoicePublishProduction,
		ChoiceCleanOnly,
	}
}

// ParseMenuChoice converts raw user input into a MenuChoice.
// Input is trimmed and matched against the literal strings "1"-"4";
// anything else is ErrInvalidChoice.
func ParseMenuChoice(input string) (MenuChoice, error) {
	switch strings.TrimSpace(input) {
	case "1":
		return ChoiceBuildOnly, nil
	case "2":
		return ChoicePublishStaging, nil
	case "3":
		return ChoicePublishProduction, nil
	case "4":
		return ChoiceCleanOnly, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, strings.TrimSpace(input))
	}
}

// IsAffirmative reports whether a confirmation answer counts as consent.
// The trimmed input must match "y" case-insensitively; anything else,
// including "yes", is a decline.
func IsAffirmative(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "y")
}
