package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", "prod")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	l.Info("game [over]", "winner", "human")

	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected json output\tgot: %s", out)
	}
	if !strings.Contains(out, `"winner":"human"`) {
		t.Fatalf("expected winner field\tgot: %s", out)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn", "dev")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered\tgot: %s", buf.String())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", "dev"); err == nil {
		t.Fatal("expected error")
	}
}
