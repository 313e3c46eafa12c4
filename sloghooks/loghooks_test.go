package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBuf() (*bytes.Buffer, *slog.Logger) {
	var buf bytes.Buffer
	return &buf, slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRedactsKeys(t *testing.T) {
	buf, l := newBuf()
	h := New(l, Options{})
	h.InvalidEntry("z85:peer:secret", "armor")
	h.HealFailed("z85:peer:secret", errors.New("down"))

	out := buf.String()
	if strings.Contains(out, "secret") {
		t.Fatalf("raw key leaked: %s", out)
	}
	if !strings.Contains(out, "reason=armor") || !strings.Contains(out, "err=down") {
		t.Fatalf("missing fields: %s", out)
	}
}

func TestCustomRedactAndSampling(t *testing.T) {
	buf, l := newBuf()
	h := New(l, Options{RejectEvery: 3, Redact: func(string) string { return "K" }})
	for i := 0; i < 9; i++ {
		h.SetRejected("z85:peer:a")
	}
	if n := strings.Count(buf.String(), "z85store.set_rejected"); n != 3 {
		t.Fatalf("logged %d of 9 with RejectEvery=3", n)
	}
	if !strings.Contains(buf.String(), "key=K") {
		t.Fatalf("custom redactor not used: %s", buf.String())
	}
}

func TestNilLogger(t *testing.T) {
	h := New(nil, Options{})
	h.InvalidEntry("k", "armor")
	h.HealFailed("k", errors.New("x"))
	h.SetRejected("k")
}
