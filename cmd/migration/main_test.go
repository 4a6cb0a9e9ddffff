package main

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/riskibarqy/match-recap/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	t.Parallel()

	if steps, err := parseSteps(nil); err != nil || steps != 1 {
		t.Fatalf("expected default of 1 step, got %d (%v)", steps, err)
	}
	if steps, err := parseSteps([]string{" 3 "}); err != nil || steps != 3 {
		t.Fatalf("expected 3 steps, got %d (%v)", steps, err)
	}
	for _, raw := range []string{"0", "-2", "two"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	t.Parallel()

	if v, err := parseVersion("1772000000"); err != nil || v != 1772000000 {
		t.Fatalf("unexpected version: %d (%v)", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if target, err := parseTarget("1772000000"); err != nil || target != 1772000000 {
		t.Fatalf("unexpected target: %d (%v)", target, err)
	}
	if _, err := parseTarget("latest"); err == nil {
		t.Fatalf("expected error for non-numeric target")
	}
}

func TestIgnoreNoChange(t *testing.T) {
	t.Parallel()

	logger := logging.NewNop()
	if err := ignoreNoChange(migrate.ErrNoChange, logger); err != nil {
		t.Fatalf("expected ErrNoChange to be ignored, got %v", err)
	}
	boom := errors.New("boom")
	if err := ignoreNoChange(boom, logger); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRun_RequiresCommand(t *testing.T) {
	t.Parallel()

	if err := run(nil, logging.NewNop()); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}
