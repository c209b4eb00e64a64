// Package ladder models cable ladders as ordered sequences of straight
// or bent sections.
//
// Sections live in continuous coordinate space (meters, relative to the
// room origin) and are deliberately independent of the tile grid in
// [plan]: ladders are a drafting aid, not a collision domain, so
// overlaps between sections are never checked.
//
// A [Ladder] is built incrementally by appending sections in build
// order. [Ladder.RemoveLastSection] pops the most recent section (the
// common "undo" during drafting), and [Ladder.RemoveSection] removes by
// id. [Ladder.TotalLength] is always the live sum of the current
// sections' lengths.
//
// [plan]: github.com/matzehuels/rackroom/pkg/plan
package ladder
