package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

var symbolRe = regexp.MustCompile(`^[A-Z0-9.&-]+$`)

// PromptForSymbol prompts the user to enter an NSE symbol
func PromptForSymbol() (string, error) {
	var symbol string
	prompt := &survey.Input{
		Message: "Enter the NSE symbol (e.g., RELIANCE, TCS, INFY):",
		Help:    "Please enter a valid NSE equity symbol for analysis",
	}

	err := survey.AskOne(prompt, &symbol, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(strings.ToUpper(val.(string)))
		if len(str) == 0 {
			return fmt.Errorf("symbol cannot be empty")
		}
		if len(str) > 15 {
			return fmt.Errorf("symbol too long (max 15 characters)")
		}
		if !symbolRe.MatchString(str) {
			return fmt.Errorf("invalid symbol format (use letters, numbers, dots, ampersands and hyphens only)")
		}
		return nil
	}))

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.ToUpper(symbol)), nil
}
