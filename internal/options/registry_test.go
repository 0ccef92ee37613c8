package options

import (
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	groups := reg.Groups()
	if len(groups) != 2 {
		t.Fatalf("len(Groups()) = %d, want 2", len(groups))
	}
	if groups[0].Name() != "clock" || groups[1].Name() != "date" {
		t.Errorf("Groups() order = [%s %s], want [clock date]", groups[0].Name(), groups[1].Name())
	}

	clock := reg.Get("clock")
	if clock == nil {
		t.Fatal("Get(clock) returned nil")
	}
	if clock.Len() != 3 {
		t.Errorf("clock.Len() = %d, want 3", clock.Len())
	}
	if clock.Separator() != ':' {
		t.Errorf("clock.Separator() = %q, want ':'", clock.Separator())
	}

	hours := clock.Item(0)
	if hours.Value() != 12 || hours.Min() != 0 || hours.Max() != 23 {
		t.Errorf("hours = %d (%d-%d), want 12 (0-23)", hours.Value(), hours.Min(), hours.Max())
	}

	date := reg.Get("date")
	if date == nil {
		t.Fatal("Get(date) returned nil")
	}
	year := date.Item(2)
	if year.Value() != 25 || year.Min() != 0 || year.Max() != 99 {
		t.Errorf("year = %d (%d-%d), want 25 (0-99)", year.Value(), year.Min(), year.Max())
	}

	if reg.Get("missing") != nil {
		t.Error("Get(missing) should return nil")
	}
}

func TestDefaultRegistryIsFresh(t *testing.T) {
	first := DefaultRegistry()
	first.Get("clock").Item(0).Increment()

	second := DefaultRegistry()
	if got := second.Get("clock").Item(0).Value(); got != 12 {
		t.Errorf("new registry hours = %d, want 12", got)
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(Clock(), Clock())
	if err == nil {
		t.Fatal("NewRegistry() with duplicate names should fail")
	}
	if !IsValidationError(err) {
		t.Errorf("Expected ValidationError, got %T", err)
	}
}

func TestNewRegistryRequiresGroups(t *testing.T) {
	if _, err := NewRegistry(); err == nil {
		t.Error("NewRegistry() with no groups should fail")
	}
}
