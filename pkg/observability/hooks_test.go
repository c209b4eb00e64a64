package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingPlacementHooks struct {
	NoopPlacementHooks
	placed []string
}

func (h *recordingPlacementHooks) OnPlace(_ context.Context, roomID, footprintID string, err error) {
	h.placed = append(h.placed, roomID+"/"+footprintID)
}

type recordingStoreHooks struct {
	NoopStoreHooks
	saves int
	errs  int
}

func (h *recordingStoreHooks) OnSave(_ context.Context, _ string, _ time.Duration, err error) {
	h.saves++
	if err != nil {
		h.errs++
	}
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	Placement().OnPlace(context.Background(), "dc-1", "rack-1", nil)
	Store().OnLoad(context.Background(), "dc-1", time.Millisecond, nil)
	HTTP().OnResponse(context.Background(), "GET", "/healthz", 200, time.Millisecond)
}

func TestSetPlacementHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingPlacementHooks{}
	SetPlacementHooks(h)

	Placement().OnPlace(context.Background(), "dc-1", "rack-1", nil)
	Placement().OnPlace(context.Background(), "dc-1", "rack-2", errors.New("overlap"))

	if len(h.placed) != 2 || h.placed[0] != "dc-1/rack-1" {
		t.Errorf("recorded placements = %v", h.placed)
	}
}

func TestSetStoreHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingStoreHooks{}
	SetStoreHooks(h)

	Store().OnSave(context.Background(), "dc-1", time.Millisecond, nil)
	Store().OnSave(context.Background(), "dc-1", time.Millisecond, errors.New("boom"))

	if h.saves != 2 || h.errs != 1 {
		t.Errorf("saves = %d, errs = %d, want 2 and 1", h.saves, h.errs)
	}
}

func TestSetHooks_NilIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetPlacementHooks(nil)
	if Placement() == nil {
		t.Error("Placement() = nil after SetPlacementHooks(nil)")
	}
}

func TestReset(t *testing.T) {
	SetPlacementHooks(&recordingPlacementHooks{})
	Reset()

	if _, ok := Placement().(NoopPlacementHooks); !ok {
		t.Errorf("Placement() = %T after Reset, want NoopPlacementHooks", Placement())
	}
}
