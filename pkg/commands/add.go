package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
	"tableflip.dev/rampeditor/pkg/commands/options"
	"tableflip.dev/rampeditor/pkg/palette"
	"tableflip.dev/rampeditor/pkg/runner/add"
	"tableflip.dev/rampeditor/pkg/snake"
)

func addAdd(topLevel *cobra.Command) {
	interactive := false

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add colors, ramps, watchers or copies to a palette.",
		Example: `
rampeditor add color "#ff8800"
rampeditor add ramp 00:00:00 00:00:07 --count 6
rampeditor add watch 00:00:03 --at 00:01:00
rampeditor add copy 00:00:03 --resolve
rampeditor add -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				return cmd.Help()
			}
			next, nextArgs, err := snake.ForCommand(cmd).PromptNext(cmd)
			if err != nil {
				return err
			}
			if next.Args != nil {
				if err := next.Args(next, nextArgs); err != nil {
					return err
				}
			}
			next.SetContext(cmd.Context())
			return next.RunE(next, nextArgs)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"Choose the element and its options with prompts.")

	addColor(cmd)
	addRamp(cmd)
	addWatch(cmd)
	addCopy(cmd)

	topLevel.AddCommand(cmd)
}

// runAdd applies op to the selected palette.
func runAdd(cmd *cobra.Command, op palette.Operation) error {
	cmd.SilenceUsage = true
	s, err := loadSession()
	if err != nil {
		return oo.HandleError(err)
	}
	a := add.Add{
		Palette:   s.palette(),
		Operation: op,
		Quiet:     oo.JSON,
		Service:   s.service,
	}
	err = a.Do(cmd.Context())
	return oo.HandleError(err)
}

func addColor(topLevel *cobra.Command) {
	pl := &options.PlacementOptions{}
	repeat := 1
	var c color.Color

	cmd := &cobra.Command{
		Use:   "color <hex>",
		Short: "Insert a plain color.",
		Example: `
rampeditor add color "#ff8800"
rampeditor add color 0f0 --at 00:00:04 --overwrite
rampeditor add color 000 --repeat 4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one color")
			}
			var err error
			c, err = color.ParseHex(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var op palette.Operation = &palette.InsertColor{
				Color:     c,
				Location:  pl.Location(),
				Overwrite: pl.Overwrite,
			}
			if repeat > 1 {
				op = &palette.Repeat{Operation: op, Count: repeat}
			}
			return runAdd(cmd, op)
		},
	}

	snake.Register(cmd, snake.Arg{Name: "color", Validate: validateColor})
	options.AddPlacementArgs(cmd, pl)
	cmd.Flags().IntVar(&repeat, "repeat", 1, "Insert the color this many times.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addRamp(topLevel *cobra.Command) {
	pl := &options.PlacementOptions{}
	so := &options.SourceOptions{}
	count := 0
	var ends []address.Address

	cmd := &cobra.Command{
		Use:   "ramp <from> <to>",
		Short: "Insert a ramp of colors mixed between two sources.",
		Long: base.Wrap80("Insert count colors that stay mixed between the colors at <from> and <to>. " +
			"Changing either source later changes every color of the ramp."),
		Example: `
rampeditor add ramp 00:00:00 00:00:07 --count 6
rampeditor add ramp 00:00:00 00:00:01 --count 3 --at 00:01:00 --make-sources
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("expected a from and a to address")
			}
			var err error
			ends, err = options.ParseAddresses(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			return runAdd(cmd, &palette.InsertRamp{
				From:        ends[0],
				To:          ends[1],
				Count:       count,
				Location:    pl.Location(),
				Overwrite:   pl.Overwrite,
				MakeSources: so.Make,
			})
		},
	}

	snake.Register(cmd,
		snake.Arg{Name: "from", Validate: validateAddress},
		snake.Arg{Name: "to", Validate: validateAddress},
	)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of colors in the ramp.")
	options.AddPlacementArgs(cmd, pl)
	options.AddMakeSourcesArgs(cmd, so)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addWatch(topLevel *cobra.Command) {
	pl := &options.PlacementOptions{}
	so := &options.SourceOptions{}
	var source address.Address

	cmd := &cobra.Command{
		Use:   "watch <source>",
		Short: "Insert a watcher that always shows the color at <source>.",
		Example: `
rampeditor add watch 00:00:03
rampeditor add watch 00:02:00 --at 00:00:0F --make-sources
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one source address")
			}
			var err error
			source, err = address.Parse(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, &palette.InsertWatcher{
				Source:     source,
				Location:   pl.Location(),
				Overwrite:  pl.Overwrite,
				MakeSource: so.Make,
			})
		},
	}

	snake.Register(cmd, snake.Arg{Name: "source", Validate: validateAddress})
	options.AddPlacementArgs(cmd, pl)
	options.AddMakeSourcesArgs(cmd, so)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addCopy(topLevel *cobra.Command) {
	pl := &options.PlacementOptions{}
	resolve := false
	var source address.Address

	cmd := &cobra.Command{
		Use:   "copy <source>",
		Short: "Copy the element at <source>.",
		Long: base.Wrap80("Copy the element at <source>, keeping its expression. " +
			"With --resolve the copy is a plain color frozen at the current value."),
		Example: `
rampeditor add copy 00:00:03
rampeditor add copy 00:00:03 --resolve --at 00:01:00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one source address")
			}
			var err error
			source, err = address.Parse(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, &palette.CopyColor{
				Source:    source,
				Location:  pl.Location(),
				Overwrite: pl.Overwrite,
				Resolve:   resolve,
			})
		},
	}

	snake.Register(cmd, snake.Arg{Name: "source", Validate: validateAddress})
	options.AddPlacementArgs(cmd, pl)
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Copy the resolved color instead of the expression.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func validateColor(s string) error {
	_, err := color.ParseHex(s)
	return err
}

func validateAddress(s string) error {
	_, err := address.Parse(s)
	return err
}
