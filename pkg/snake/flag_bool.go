package snake

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/pflag"
)

var answerTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} : ",
	Valid:   "{{ . | green }} : ",
	Invalid: "{{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

func asFlags(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return fmt.Sprintf("--%s", f.Name)
}

// PromptFlagBool asks for a yes/no answer and sets f.
func (p *Prompter) PromptFlagBool(f *pflag.Flag) error {
	_, _ = fmt.Fprintf(p.Out, "%s: %s [%s] Default: %s\n", asFlags(f), f.Usage, f.Value.Type(), f.DefValue)

	label := "true/false"
	if defTrue, err := ParseBool(f.DefValue); err == nil {
		if defTrue {
			label = "[true]/false"
		} else {
			label = "true/[false]"
		}
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: answerTemplates,
		Validate: func(input string) error {
			if input == "" {
				return nil
			}
			_, err := ParseBool(input)
			return err
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
	r, _ := ParseBool(result)
	if err := f.Value.Set(strconv.FormatBool(r)); err != nil {
		return err
	}
	f.Changed = true
	return nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
