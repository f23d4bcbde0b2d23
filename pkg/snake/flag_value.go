package snake

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/pflag"
)

// PromptFlagValue asks for a value and sets f, letting the flag's own
// parser validate the input.
func (p *Prompter) PromptFlagValue(f *pflag.Flag) error {
	_, _ = fmt.Fprintf(p.Out, "%s: %s [%s] Default: %s\n", asFlags(f), f.Usage, f.Value.Type(), f.DefValue)

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf(`["%s"]`, f.DefValue),
		Templates: answerTemplates,
		Validate: func(input string) error {
			if input == "" && f.DefValue == "" {
				return errors.New("empty")
			}
			return nil
		},
		Stdin:  p.In,
		Stdout: p.Out,
	}

	result, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("prompt %s: %w", f.Name, err)
	}
	if result == "" {
		result = f.DefValue
	}
	if err := f.Value.Set(result); err != nil {
		return fmt.Errorf("--%s: %w", f.Name, err)
	}
	f.Changed = true
	return nil
}
