package store

import (
	"context"
	"errors"
	"slices"
	"testing"

	planio "github.com/matzehuels/rackroom/pkg/io"
)

func testDoc(roomID string) planio.Document {
	return planio.Document{
		Room: planio.RoomRecord{
			RoomID:       roomID,
			NumTilesX:    10,
			NumTilesY:    8,
			TileSize:     0.6,
			HeightMeters: 3.0,
		},
		Racks: []planio.RackRecord{
			{ID: "rack-1", X: 2, Y: 2, WidthTiles: 2, DepthTiles: 2, RackUnits: 42},
		},
	}
}

// backends lists the stores testable without external services.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStore_SaveLoad(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := st.Save(ctx, testDoc("dc-1")); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			doc, err := st.Load(ctx, "dc-1")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if doc.Room.NumTilesX != 10 || len(doc.Racks) != 1 {
				t.Errorf("loaded doc = %+v", doc.Room)
			}
		})
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := st.Save(ctx, testDoc("dc-1")); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			updated := testDoc("dc-1")
			updated.Racks = nil
			if err := st.Save(ctx, updated); err != nil {
				t.Fatalf("Save() overwrite error = %v", err)
			}

			doc, err := st.Load(ctx, "dc-1")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(doc.Racks) != 0 {
				t.Errorf("loaded %d racks after overwrite, want 0", len(doc.Racks))
			}
		})
	}
}

func TestStore_LoadMissing(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := st.Load(context.Background(), "ghost")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Load() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_SaveEmptyID(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			err := st.Save(context.Background(), testDoc(""))
			if !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Save() error = %v, want ErrInvalidKey", err)
			}
		})
	}
}

func TestStore_Delete(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := st.Save(ctx, testDoc("dc-1")); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if err := st.Delete(ctx, "dc-1"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := st.Load(ctx, "dc-1"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load() after delete error = %v, want ErrNotFound", err)
			}
			if err := st.Delete(ctx, "dc-1"); !errors.Is(err, ErrNotFound) {
				t.Errorf("second Delete() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_List(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			for _, id := range []string{"dc-1", "dc-2"} {
				if err := st.Save(ctx, testDoc(id)); err != nil {
					t.Fatalf("Save(%s) error = %v", id, err)
				}
			}

			ids, err := st.List(ctx)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			slices.Sort(ids)
			if !slices.Equal(ids, []string{"dc-1", "dc-2"}) {
				t.Errorf("List() = %v, want [dc-1 dc-2]", ids)
			}
		})
	}
}

func TestFileStore_PlansSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	st, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if err := st.Save(ctx, testDoc("dc-1")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	st2, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() reopen error = %v", err)
	}
	doc, err := st2.Load(ctx, "dc-1")
	if err != nil {
		t.Fatalf("Load() after reopen error = %v", err)
	}
	if doc.Room.RoomID != "dc-1" {
		t.Errorf("loaded room id = %q, want dc-1", doc.Room.RoomID)
	}
}

func TestPlanKey(t *testing.T) {
	if got := planKey("dc-1"); got != "plan:dc-1" {
		t.Errorf("planKey() = %q, want %q", got, "plan:dc-1")
	}
}
