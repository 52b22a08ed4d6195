package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rogers-f/moodpet/internal/domain"
)

func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Name: "Mochi",
		Status: domain.Status{
			Hunger: 62.5, Happiness: 40, Sadness: 10, Anger: 7.75,
			Boredom: 33, Health: 91, Energy: 100,
		},
		LastUpdate: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
	}
}

func TestCodecFor(t *testing.T) {
	tests := []struct {
		path string
		want Codec
	}{
		{"pet_data.json", JSONCodec{}},
		{"state/pet.toml", TOMLCodec{}},
		{"PET.TOML", TOMLCodec{}},
		{"pet", JSONCodec{}},
	}
	for _, tt := range tests {
		if got := CodecFor(tt.path); got != tt.want {
			t.Errorf("CodecFor(%q) = %T, want %T", tt.path, got, tt.want)
		}
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	for _, name := range []string{"pet_data.json", "pet.toml"} {
		t.Run(name, func(t *testing.T) {
			s := NewFileStore(filepath.Join(t.TempDir(), name))
			ctx := context.Background()
			want := testSnapshot()

			if err := s.Save(ctx, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got == nil {
				t.Fatal("expected snapshot, got nil")
			}
			if got.Name != want.Name {
				t.Errorf("Name = %q, want %q", got.Name, want.Name)
			}
			if got.Status != want.Status {
				t.Errorf("Status = %+v, want %+v", got.Status, want.Status)
			}
			if !got.LastUpdate.Equal(want.LastUpdate) {
				t.Errorf("LastUpdate = %v, want %v", got.LastUpdate, want.LastUpdate)
			}
		})
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing file, got %+v", got)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewFileStore(path).Load(context.Background())
	if !errors.Is(err, domain.ErrSnapshotCorrupt) {
		t.Fatalf("expected ErrSnapshotCorrupt, got %v", err)
	}
}

func TestFileStore_ReadError(t *testing.T) {
	// A directory at the state path cannot be read as a file.
	path := t.TempDir()

	_, err := NewFileStore(path).Load(context.Background())
	if !errors.Is(err, domain.ErrStoreRead) {
		t.Fatalf("expected ErrStoreRead, got %v", err)
	}
}

func TestFileStore_CreatesDirectoryAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "pet_data.json")
	s := NewFileStore(path)
	ctx := context.Background()

	first := testSnapshot()
	second := testSnapshot()
	second.Name = "Biscuit"
	second.Status.Hunger = 5

	for _, snap := range []domain.Snapshot{first, second} {
		if err := s.Save(ctx, snap); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("expected tmp file to be renamed away, stat err = %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "Biscuit" || got.Status.Hunger != 5 {
		t.Errorf("Load = %+v, want second snapshot", got)
	}
}

func TestFileStore_JSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_data.json")
	if err := NewFileStore(path).Save(context.Background(), testSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"name", "status", "last_update"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}

	var status map[string]float64
	if err := json.Unmarshal(raw["status"], &status); err != nil {
		t.Fatalf("unmarshal status: %v", err)
	}
	if len(status) != 7 {
		t.Errorf("status has %d fields, want 7", len(status))
	}
}

func TestFileStore_LoadsFloatSecondsLastUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_data.json")
	data := `{
  "name": "Mochi",
  "status": {"hunger": 50, "happiness": 50, "sadness": 0, "anger": 0,
             "boredom": 0, "health": 100, "energy": 100},
  "last_update": 1735689600.123
}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := time.Unix(1735689600, 123000000)
	if d := got.LastUpdate.Sub(want); d < -time.Microsecond || d > time.Microsecond {
		t.Errorf("LastUpdate = %v, want %v", got.LastUpdate, want)
	}
	if got.Status != domain.DefaultStatus() {
		t.Errorf("Status = %+v, want defaults", got.Status)
	}
}

func TestFileStore_LoadsRFC3339LastUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_data.json")
	data := `{"name": "Mochi", "status": {"health": 100, "energy": 100}, "last_update": "2026-10-16T09:30:00Z"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.LastUpdate.Equal(testSnapshot().LastUpdate) {
		t.Errorf("LastUpdate = %v, want %v", got.LastUpdate, testSnapshot().LastUpdate)
	}
}

func TestFileStore_JSONWritesFloatSeconds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_data.json")
	snap := testSnapshot()
	if err := NewFileStore(path).Save(context.Background(), snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var raw struct {
		LastUpdate float64 `json:"last_update"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("last_update is not a number: %v", err)
	}
	if raw.LastUpdate != float64(snap.LastUpdate.Unix()) {
		t.Errorf("last_update = %v, want %v", raw.LastUpdate, snap.LastUpdate.Unix())
	}
}
