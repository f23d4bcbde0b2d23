package commands

import (
	"bytes"
	"net"
	"testing"

	fatihcolor "github.com/fatih/color"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/commands/options"
	"tableflip.dev/rampeditor/pkg/palette"
)

func init() {
	fatihcolor.NoColor = true
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	root := New()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestCommandsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RAMPEDITOR_PATH", dir)
	t.Setenv("RAMPEDITOR_CONFIG_PATH", dir)

	run(t, "new", "test", "--lines", "2", "--columns", "4")
	run(t, "add", "color", "000000", "-p", "test")
	run(t, "add", "color", "040404", "-p", "test")
	run(t, "add", "ramp", "00:00:00", "00:00:01", "--count", "1", "-p", "test")

	want := "#00:00:00 000000\n#00:00:01 040404\n#00:00:02 020202\n"
	if got := run(t, "export", "-p", "test"); got != want {
		t.Errorf("export:\n%s\nwant:\n%s", got, want)
	}

	run(t, "undo", "-p", "test")
	want = "#00:00:00 000000\n#00:00:01 040404\n"
	if got := run(t, "export", "-p", "test"); got != want {
		t.Errorf("export after undo:\n%s\nwant:\n%s", got, want)
	}

	run(t, "redo", "-p", "test")
	run(t, "remove", "00:00:00", "00:00:01", "-p", "test")
	root := New()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"export", "-p", "test"})
	if err := root.Execute(); err == nil {
		t.Error("export with removed ramp sources succeeded, want a missing source error")
	}

	run(t, "undo", "-p", "test")
	want = "#00:00:00 000000\n#00:00:01 040404\n#00:00:02 020202\n"
	if got := run(t, "export", "-p", "test"); got != want {
		t.Errorf("export after undoing remove:\n%s\nwant:\n%s", got, want)
	}
}

func TestCommandTree(t *testing.T) {
	root := New()
	for _, path := range [][]string{
		{"new"}, {"add", "color"}, {"add", "ramp"}, {"add", "watch"}, {"add", "copy"},
		{"remove"}, {"undo"}, {"redo"}, {"get"}, {"export"}, {"browse"},
		{"delete"}, {"key"}, {"info"}, {"mcp"}, {"version"}, {"completion"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil {
			t.Errorf("%v: %v", path, err)
			continue
		}
		if cmd.Name() != path[len(path)-1] {
			t.Errorf("%v resolved to %q", path, cmd.Name())
		}
	}
}

func TestRemoveOperation(t *testing.T) {
	a := address.New(0, 0, 1)
	b := address.New(0, 0, 2)

	if op, ok := removeOperation([]address.Address{a}).(*palette.RemoveElement); !ok || op.Location != a {
		t.Errorf("single address = %#v, want a RemoveElement at %s", op, a.Hex())
	}

	seq, ok := removeOperation([]address.Address{a, b}).(*palette.Sequence)
	if !ok {
		t.Fatalf("several addresses did not build a sequence")
	}
	if len(seq.Operations) != 2 {
		t.Errorf("sequence has %d operations, want 2", len(seq.Operations))
	}
}

func TestOptions(t *testing.T) {
	bo := &options.BoundsOptions{Lines: 4}
	got := bo.Merge(address.Bounds{Pages: 1, Lines: 16, Columns: 16})
	if want := (address.Bounds{Pages: 1, Lines: 4, Columns: 16}); got != want {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}

	po := &options.PaletteOptions{}
	if got := po.Resolve("default"); got != "default" {
		t.Errorf("Resolve = %q, want default", got)
	}
	po.Name = "sunset"
	if got := po.Resolve("default"); got != "sunset" {
		t.Errorf("Resolve = %q, want sunset", got)
	}

	if _, err := options.ParseAddresses([]string{"00:00:01", "nope"}); err == nil {
		t.Error("ParseAddresses accepted an invalid address")
	}

	pl := &options.PlacementOptions{}
	if pl.Location() != nil {
		t.Error("unset --at produced a location")
	}
	if err := pl.At.Set("00:01:0A"); err != nil {
		t.Fatal(err)
	}
	if loc := pl.Location(); loc == nil || *loc != address.New(0, 1, 10) {
		t.Errorf("Location = %v, want 00:01:0A", loc)
	}
}

func TestDisplayAddr(t *testing.T) {
	a := &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4242}
	if got := displayAddr("0.0.0.0", a); got != "127.0.0.1:4242" {
		t.Errorf("displayAddr = %q", got)
	}
	if got := displayAddr("::1", a); got != "[::1]:4242" {
		t.Errorf("displayAddr = %q", got)
	}
}
