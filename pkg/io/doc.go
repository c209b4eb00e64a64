// Package io provides JSON import and export for floor plans.
//
// # Overview
//
// A plan document captures the full planning state - the room grid,
// every placed rack and obstacle, and every cable ladder with its
// ordered sections - field for field, so an external layer can persist
// and restore it losslessly. The same document is what the file, redis
// and mongo stores persist and what the HTTP API serves.
//
// # Round-Trip Guarantees
//
// [Snapshot] records current state including the racks' derived
// physical attributes (height, estimated weight) for the benefit of
// consumers that read the JSON directly. [Restore] ignores the derived
// fields and revalidates everything through the core constructors and
// [plan.Room.AddFootprint], so a hand-edited or corrupt document can
// never produce a room that violates the occupancy invariants.
//
// # Import and Export
//
// Use [ExportJSON] / [ImportJSON] for files, or [WriteJSON] /
// [ReadJSON] with any io.Writer / io.Reader:
//
//	doc := io.Snapshot(room, ladders)
//	if err := io.ExportJSON(doc, "plan.json"); err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := io.ImportJSON("plan.json")
//	room, ladders, err := io.Restore(doc)
//
// Errors are wrapped with context describing which rack, obstacle or
// section caused the problem. Use errors.Is to check for the core
// sentinel errors such as [plan.ErrOverlap].
package io
