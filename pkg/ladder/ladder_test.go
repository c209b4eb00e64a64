package ladder

import (
	"errors"
	"math"
	"testing"
)

func mustSection(t *testing.T, id string, length float64, opts ...SectionOption) *Section {
	t.Helper()
	s, err := NewSection(id, 0, 0, length, Horizontal, opts...)
	if err != nil {
		t.Fatalf("NewSection(%s) error = %v", id, err)
	}
	return s
}

func TestNewSection_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		length      float64
		orientation Orientation
	}{
		{"empty id", "", 1.0, Horizontal},
		{"zero length", "s", 0, Horizontal},
		{"negative length", "s", -2.0, Vertical},
		{"unknown orientation", "s", 1.0, Orientation("diagonal")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSection(tt.id, 0, 0, tt.length, tt.orientation)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewSection() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewSection_Defaults(t *testing.T) {
	s := mustSection(t, "s1", 2.0)

	if got := s.WidthCm(); got != DefaultWidthCm {
		t.Errorf("WidthCm() = %v, want %v", got, DefaultWidthCm)
	}
	if got := s.Material(); got != DefaultMaterial {
		t.Errorf("Material() = %q, want %q", got, DefaultMaterial)
	}
	if !s.IsStraight() {
		t.Error("IsStraight() = false for default section, want true")
	}
}

func TestNewSection_Options(t *testing.T) {
	s, err := NewSection("s1", 1.0, 2.0, 3.0, Vertical,
		WithBend(-45), WithWidth(60), WithMaterial("steel"))
	if err != nil {
		t.Fatalf("NewSection() error = %v", err)
	}

	if got := s.BendDegree(); got != -45 {
		t.Errorf("BendDegree() = %v, want -45", got)
	}
	if s.IsStraight() {
		t.Error("IsStraight() = true for bent section, want false")
	}
	if got := s.WidthCm(); got != 60 {
		t.Errorf("WidthCm() = %v, want 60", got)
	}
	if got := s.Material(); got != "steel" {
		t.Errorf("Material() = %q, want %q", got, "steel")
	}
}

func TestNewSection_InvalidWidth(t *testing.T) {
	_, err := NewSection("s1", 0, 0, 1.0, Horizontal, WithWidth(-30))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewSection() error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewLadder_EmptyID(t *testing.T) {
	if _, err := NewLadder(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewLadder() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLadder_TotalLength(t *testing.T) {
	l, err := NewLadder("run-1")
	if err != nil {
		t.Fatalf("NewLadder() error = %v", err)
	}

	if got := l.TotalLength(); got != 0 {
		t.Errorf("TotalLength() of empty ladder = %v, want 0", got)
	}

	for i, length := range []float64{1.5, 2.0, 1.5} {
		s := mustSection(t, []string{"a", "b", "c"}[i], length)
		if err := l.AddSection(s); err != nil {
			t.Fatalf("AddSection() error = %v", err)
		}
	}

	const eps = 1e-9
	if got := l.TotalLength(); math.Abs(got-5.0) > eps {
		t.Errorf("TotalLength() = %v, want 5.0", got)
	}
	if got := l.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestLadder_RemoveLastSection(t *testing.T) {
	l, _ := NewLadder("run-1")
	_ = l.AddSection(mustSection(t, "a", 1.5))
	_ = l.AddSection(mustSection(t, "b", 2.0))
	_ = l.AddSection(mustSection(t, "c", 1.5))

	sec, err := l.RemoveLastSection()
	if err != nil {
		t.Fatalf("RemoveLastSection() error = %v", err)
	}
	if got := sec.ID(); got != "c" {
		t.Errorf("removed section = %q, want %q", got, "c")
	}
	if got := l.TotalLength(); math.Abs(got-3.5) > 1e-9 {
		t.Errorf("TotalLength() after pop = %v, want 3.5", got)
	}
}

func TestLadder_RemoveLastSection_Empty(t *testing.T) {
	l, _ := NewLadder("run-1")
	if _, err := l.RemoveLastSection(); !errors.Is(err, ErrEmpty) {
		t.Errorf("RemoveLastSection() error = %v, want ErrEmpty", err)
	}
}

func TestLadder_RemoveSection(t *testing.T) {
	l, _ := NewLadder("run-1")
	_ = l.AddSection(mustSection(t, "a", 1.0))
	_ = l.AddSection(mustSection(t, "b", 2.0))
	_ = l.AddSection(mustSection(t, "c", 3.0))

	if err := l.RemoveSection("b"); err != nil {
		t.Fatalf("RemoveSection(b) error = %v", err)
	}

	if got := l.TotalLength(); math.Abs(got-4.0) > 1e-9 {
		t.Errorf("TotalLength() = %v, want 4.0", got)
	}
	sections := l.Sections()
	if len(sections) != 2 || sections[0].ID() != "a" || sections[1].ID() != "c" {
		t.Errorf("Sections() order broken after middle removal: %v", sections)
	}

	if err := l.RemoveSection("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveSection(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestLadder_SectionLookup(t *testing.T) {
	l, _ := NewLadder("run-1")
	_ = l.AddSection(mustSection(t, "a", 1.0))

	if s, ok := l.Section("a"); !ok || s.ID() != "a" {
		t.Errorf("Section(a) = %v, %v, want section a, true", s, ok)
	}
	if _, ok := l.Section("ghost"); ok {
		t.Error("Section(ghost) found, want false")
	}
}

func TestLadder_AddSection_Nil(t *testing.T) {
	l, _ := NewLadder("run-1")
	if err := l.AddSection(nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("AddSection(nil) error = %v, want ErrInvalidConfig", err)
	}
}
