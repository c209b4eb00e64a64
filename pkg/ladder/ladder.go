package ladder

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidConfig is returned by [NewSection] and [NewLadder] for
	// empty ids, non-positive lengths or unknown orientations.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotFound is returned by [Ladder.RemoveSection] when no
	// section with the given id exists.
	ErrNotFound = errors.New("section not found")

	// ErrEmpty is returned by [Ladder.RemoveLastSection] when the
	// ladder has no sections.
	ErrEmpty = errors.New("ladder has no sections")
)

// Orientation is the axis a section runs along.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Defaults for section physical attributes. Width is a capacity class
// in centimeters (30/60/90/120 are the common tray widths).
const (
	DefaultWidthCm  = 30.0
	DefaultMaterial = "aluminum"
)

// Section is a single straight or bent ladder segment. BendDegree is 0
// for straight runs; positive values bend right, negative bend left.
//
// Construct with [NewSection]; the zero value is not usable.
type Section struct {
	id          string
	x           float64 // start coordinate in meters, relative to room origin
	y           float64
	length      float64 // meters
	orientation Orientation
	bendDegree  float64
	widthCm     float64
	material    string
}

// SectionOption configures optional section attributes.
type SectionOption func(*Section)

// WithBend sets the bend in degrees (positive right, negative left).
func WithBend(degrees float64) SectionOption {
	return func(s *Section) { s.bendDegree = degrees }
}

// WithWidth overrides the default 30 cm tray width.
func WithWidth(cm float64) SectionOption {
	return func(s *Section) { s.widthCm = cm }
}

// WithMaterial overrides the default "aluminum" material.
func WithMaterial(material string) SectionOption {
	return func(s *Section) { s.material = material }
}

// NewSection creates a section starting at (x, y) meters running length
// meters along the given orientation. Returns [ErrInvalidConfig] for an
// empty id, a length that is not positive, or an orientation other than
// [Horizontal] or [Vertical].
func NewSection(id string, x, y, length float64, orientation Orientation, opts ...SectionOption) (*Section, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: section id must not be empty", ErrInvalidConfig)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: section %s length %.2fm", ErrInvalidConfig, id, length)
	}
	if orientation != Horizontal && orientation != Vertical {
		return nil, fmt.Errorf("%w: section %s orientation %q", ErrInvalidConfig, id, orientation)
	}

	s := &Section{
		id:          id,
		x:           x,
		y:           y,
		length:      length,
		orientation: orientation,
		widthCm:     DefaultWidthCm,
		material:    DefaultMaterial,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.widthCm <= 0 {
		return nil, fmt.Errorf("%w: section %s width %.1fcm", ErrInvalidConfig, id, s.widthCm)
	}
	return s, nil
}

// ID returns the section identifier.
func (s *Section) ID() string { return s.id }

// X returns the start X coordinate in meters.
func (s *Section) X() float64 { return s.x }

// Y returns the start Y coordinate in meters.
func (s *Section) Y() float64 { return s.y }

// Length returns the section length in meters.
func (s *Section) Length() float64 { return s.length }

// Orientation returns the axis the section runs along.
func (s *Section) Orientation() Orientation { return s.orientation }

// BendDegree returns the bend in degrees, 0 for straight sections.
func (s *Section) BendDegree() float64 { return s.bendDegree }

// IsStraight reports whether the section has no bend.
func (s *Section) IsStraight() bool { return s.bendDegree == 0 }

// WidthCm returns the tray width capacity class in centimeters.
func (s *Section) WidthCm() float64 { return s.widthCm }

// Material returns the tray material.
func (s *Section) Material() string { return s.material }

// String returns a compact description for logs.
func (s *Section) String() string {
	return fmt.Sprintf("Section(%s %.2fm %s at %.2f,%.2f)", s.id, s.length, s.orientation, s.x, s.y)
}

// Ladder is an ordered sequence of sections. Insertion order is the
// build order and the order sections are reported and summed in.
//
// Ladder is not safe for concurrent use. Construct with [NewLadder].
type Ladder struct {
	id       string
	sections []*Section
}

// NewLadder creates an empty ladder. Returns [ErrInvalidConfig] if the
// id is empty.
func NewLadder(id string) (*Ladder, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: ladder id must not be empty", ErrInvalidConfig)
	}
	return &Ladder{id: id}, nil
}

// ID returns the ladder identifier.
func (l *Ladder) ID() string { return l.id }

// AddSection appends s to the build order. No geometric validation is
// performed against existing sections.
func (l *Ladder) AddSection(s *Section) error {
	if s == nil {
		return fmt.Errorf("%w: nil section", ErrInvalidConfig)
	}
	l.sections = append(l.sections, s)
	return nil
}

// RemoveLastSection pops the most recently appended section and returns
// it. Returns [ErrEmpty] if the ladder has no sections.
func (l *Ladder) RemoveLastSection() (*Section, error) {
	if len(l.sections) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, l.id)
	}
	last := l.sections[len(l.sections)-1]
	l.sections = l.sections[:len(l.sections)-1]
	return last, nil
}

// RemoveSection removes the section with the given id, preserving the
// order of the remaining sections. Returns [ErrNotFound] if absent.
func (l *Ladder) RemoveSection(id string) error {
	for i, s := range l.sections {
		if s.ID() == id {
			l.sections = append(l.sections[:i], l.sections[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Section returns the section with the given id, or false if absent.
func (l *Ladder) Section(id string) (*Section, bool) {
	for _, s := range l.sections {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// Sections returns the sections in build order. The slice is a copy.
func (l *Ladder) Sections() []*Section {
	return slices.Clone(l.sections)
}

// Len returns the number of sections.
func (l *Ladder) Len() int { return len(l.sections) }

// TotalLength returns the sum of all current section lengths in meters.
// It is recomputed on every call so it can never drift from the
// sequence contents.
func (l *Ladder) TotalLength() float64 {
	var total float64
	for _, s := range l.sections {
		total += s.length
	}
	return total
}
