package scheduler

import (
	"context"
	"errors"
	"testing"
)

func TestAddReplaceRemove(t *testing.T) {
	s := New()
	noop := func(ctx context.Context) error { return nil }

	if err := s.Add("expire-announcements", "@every 15m", noop); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add("audit-cleanup", "0 3 * * *", noop); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.Add("expire-announcements", "*/30 * * * * *", noop); err != nil {
		t.Fatalf("Add() with seconds error = %v", err)
	}

	names := s.Names()
	if len(names) != 2 || names[0] != "audit-cleanup" || names[1] != "expire-announcements" {
		t.Errorf("Names() = %v", names)
	}

	s.Remove("audit-cleanup")
	if len(s.Names()) != 1 {
		t.Errorf("Names() after remove = %v", s.Names())
	}
}

func TestAddInvalidSchedule(t *testing.T) {
	if err := New().Add("bad", "every now and then", func(ctx context.Context) error { return nil }); err == nil {
		t.Error("expected parse error")
	}
}

func TestRunNowSurvivesFailures(t *testing.T) {
	s := New()
	calls := 0
	s.RunNow("failing", func(ctx context.Context) error {
		calls++
		return errors.New("boom")
	})
	s.RunNow("panicking", func(ctx context.Context) error {
		calls++
		panic("boom")
	})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
