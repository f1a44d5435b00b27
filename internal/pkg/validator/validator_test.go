package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "2023-02-30", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:15", "23:59"}
	invalid := []string{"24:00", "9:60", "0915", "9am", ""}
	for _, s := range valid {
		if _, ok := IsValidClockTime(s); !ok {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidClockTime(s); ok {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "start_time", Message: "start time is required"},
	}

	if errs.Error() != "date: date is required; start_time: start time is required" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}

	m := errs.ToMap()
	if len(m) != 2 || m["date"] != "date is required" {
		t.Errorf("unexpected ToMap(): %v", m)
	}
}
