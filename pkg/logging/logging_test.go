package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"pkt.systems/pslog"
)

func TestFromContextFallsBack(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a fallback logger")
	}
}

func TestFromContextCarriesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := pslog.NewWithOptions(&buf, pslog.Options{
		Mode:             pslog.ModeStructured,
		DisableTimestamp: true,
		NoColor:          true,
	})
	ctx := NewContext(context.Background(), logger)
	FromContext(ctx).Info("palette created", "palette", "sunset")
	if !strings.Contains(buf.String(), "sunset") {
		t.Fatalf("expected the context logger to be used, got %q", buf.String())
	}
}
