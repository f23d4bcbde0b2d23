package snake

import (
	"errors"
	"sync"

	"github.com/spf13/cobra"
)

// Arg describes a positional argument to prompt for.
type Arg struct {
	Name string
	// Validate rejects malformed input before the command runs.
	Validate func(string) error
}

func (a Arg) validate(input string) error {
	if input == "" {
		return errors.New("required")
	}
	if a.Validate == nil {
		return nil
	}
	return a.Validate(input)
}

var (
	mu       sync.Mutex
	registry = map[*cobra.Command][]Arg{}
)

// Register declares the positional arguments cmd expects, in order.
func Register(cmd *cobra.Command, args ...Arg) {
	mu.Lock()
	defer mu.Unlock()
	registry[cmd] = append([]Arg(nil), args...)
}

// ArgsFor returns the arguments registered for cmd.
func ArgsFor(cmd *cobra.Command) []Arg {
	mu.Lock()
	defer mu.Unlock()
	return registry[cmd]
}
