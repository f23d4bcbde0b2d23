// Package snake walks a user through a command tree with interactive
// prompts, filling positional arguments and flags.
package snake

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Prompter runs prompts against the given streams.
type Prompter struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

// ForCommand builds a Prompter on the command's input and output streams.
func ForCommand(cmd *cobra.Command) *Prompter {
	return &Prompter{
		In:  io.NopCloser(cmd.InOrStdin()),
		Out: NopCloser(cmd.OutOrStdout()),
	}
}

// PromptNext selects a runnable subcommand of cmd, then prompts for its
// registered arguments and its flags. Flags are set on the returned command.
func (p *Prompter) PromptNext(cmd *cobra.Command) (*cobra.Command, []string, error) {
	subcommands := runnable(cmd.Commands())
	if len(subcommands) == 0 {
		return cmd, nil, nil
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Name | bold }}",
		Details: `
--------- Details ----------
{{ .Long }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     cmd.Name(),
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher:  searchCommands(subcommands),
		Stdin:     p.In,
		Stdout:    p.Out,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("prompt: %w", err)
	}
	next := subcommands[i]

	if next.HasSubCommands() {
		return p.PromptNext(next)
	}

	args, err := p.PromptArgs(next)
	if err != nil {
		return nil, nil, err
	}
	if err := p.PromptFlags(next); err != nil {
		return nil, nil, err
	}
	return next, args, nil
}

// PromptArgs asks for each positional argument registered for cmd.
func (p *Prompter) PromptArgs(cmd *cobra.Command) ([]string, error) {
	var args []string
	for _, a := range ArgsFor(cmd) {
		prompt := promptui.Prompt{
			Label:     a.Name,
			Templates: answerTemplates,
			Validate:  a.validate,
			Stdin:     p.In,
			Stdout:    p.Out,
		}
		result, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("prompt %s: %w", a.Name, err)
		}
		args = append(args, strings.TrimSpace(result))
	}
	return args, nil
}

// PromptFlags offers every visible flag of cmd until the user continues.
func (p *Prompter) PromptFlags(cmd *cobra.Command) error {
	var fs []*pflag.Flag
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			fs = append(fs, f)
		}
	})
	if len(fs) == 0 {
		return nil
	}

	fs = append(fs, &pflag.Flag{
		Name:  "Continue...",
		Value: &continueType{},
	})

	templates := &promptui.SelectTemplates{
		Label:    "{{ . | magenta }} flags?",
		Active:   "➜ {{ if eq .Value.Type \"continue\" }}{{ .Name | bold | green }}{{ else }}{{ .Name | bold }} {{ .Usage | cyan }}{{ end }}",
		Inactive: "  {{ if eq .Value.Type \"continue\" }}{{ .Name | faint | green }}{{ else }}{{ .Name }} {{ .Usage | cyan }}{{ end }}",
		Selected: "{{ if eq .Value.Type \"continue\" }}{{ .Name | bold | green }}{{ else }}{{ .Name | bold }}{{ end }}",
		Details: `
--------- Details ----------
default: {{ .DefValue }}
type: {{ .Value.Type }}
`,
	}

	index := 0
	for {
		prompt := promptui.Select{
			HideHelp:  true,
			Label:     cmd.Name(),
			Items:     fs,
			Templates: templates,
			Size:      10,
			CursorPos: index,
			Searcher:  searchFlags(fs),
			Stdin:     p.In,
			Stdout:    p.Out,
		}

		i, _, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		index = i

		f := fs[i]
		switch f.Value.Type() {
		case "continue":
			return nil
		case "bool":
			err = p.PromptFlagBool(f)
		default:
			err = p.PromptFlagValue(f)
		}
		if err != nil {
			return err
		}
	}
}

func runnable(cmds []*cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmds {
		if c.IsAvailableCommand() && c.Name() != "help" {
			out = append(out, c)
		}
	}
	return out
}

func searchCommands(cmds []*cobra.Command) func(string, int) bool {
	return func(input string, index int) bool {
		return matches(cmds[index].Name()+cmds[index].Short, input)
	}
}

func searchFlags(fs []*pflag.Flag) func(string, int) bool {
	return func(input string, index int) bool {
		return matches(fs[index].Name, input)
	}
}

func matches(s, input string) bool {
	s = strings.ReplaceAll(strings.ToLower(s), " ", "")
	input = strings.ReplaceAll(strings.ToLower(input), " ", "")
	return strings.Contains(s, input)
}

type continueType struct{}

func (*continueType) String() string {
	return "continue"
}

func (*continueType) Set(string) error {
	return nil
}

func (*continueType) Type() string {
	return "continue"
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
