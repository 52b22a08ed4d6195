package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rogers-f/moodpet/internal/domain"
)

// Codec encodes a snapshot for the file store.
type Codec interface {
	Marshal(snap domain.Snapshot) ([]byte, error)
	Unmarshal(data []byte, snap *domain.Snapshot) error
}

// JSONCodec writes indented JSON: {"name", "status": {...}, "last_update"},
// with last_update as float Unix seconds. Files with an RFC 3339
// last_update are also accepted.
type JSONCodec struct{}

type jsonSnapshot struct {
	Name       string        `json:"name"`
	Status     domain.Status `json:"status"`
	LastUpdate unixSeconds   `json:"last_update"`
}

func (JSONCodec) Marshal(snap domain.Snapshot) ([]byte, error) {
	return json.MarshalIndent(jsonSnapshot{
		Name:       snap.Name,
		Status:     snap.Status,
		LastUpdate: unixSeconds{snap.LastUpdate},
	}, "", "  ")
}

func (JSONCodec) Unmarshal(data []byte, snap *domain.Snapshot) error {
	var js jsonSnapshot
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	*snap = domain.Snapshot{
		Name:       js.Name,
		Status:     js.Status,
		LastUpdate: js.LastUpdate.Time,
	}
	return nil
}

// unixSeconds is a time encoded as fractional seconds since the epoch.
type unixSeconds struct {
	time.Time
}

func (u unixSeconds) MarshalJSON() ([]byte, error) {
	if u.IsZero() {
		return []byte("0"), nil
	}
	return strconv.AppendFloat(nil, float64(u.UnixNano())/1e9, 'f', -1, 64), nil
}

func (u *unixSeconds) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &u.Time)
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("last_update: %w", err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("last_update: invalid timestamp %v", f)
	}
	sec, frac := math.Modf(f)
	u.Time = time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
	return nil
}

// TOMLCodec writes the snapshot as a TOML document.
type TOMLCodec struct{}

func (TOMLCodec) Marshal(snap domain.Snapshot) ([]byte, error) {
	return toml.Marshal(snap)
}

func (TOMLCodec) Unmarshal(data []byte, snap *domain.Snapshot) error {
	return toml.Unmarshal(data, snap)
}

// CodecFor picks a codec from the file extension. Anything that is not
// .toml is JSON.
func CodecFor(path string) Codec {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOMLCodec{}
	}
	return JSONCodec{}
}

// FileStore keeps the pet snapshot in a single file, overwritten on each save.
type FileStore struct {
	Path  string
	Codec Codec
}

// NewFileStore creates a FileStore whose codec matches the path's extension.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path, Codec: CodecFor(path)}
}

// Save writes the snapshot atomically (write tmp, then rename).
func (s *FileStore) Save(ctx context.Context, snap domain.Snapshot) error {
	data, err := s.Codec.Marshal(snap)
	if err != nil {
		return domain.WrapPetError(domain.ErrStoreWrite, fmt.Errorf("marshal state: %w", err))
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return domain.WrapPetError(domain.ErrStoreWrite, fmt.Errorf("create directory: %w", err))
		}
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return domain.WrapPetError(domain.ErrStoreWrite, fmt.Errorf("write tmp state: %w", err))
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return domain.WrapPetError(domain.ErrStoreWrite, fmt.Errorf("rename state: %w", err))
	}
	return nil
}

// Load reads the snapshot. A missing file means nothing was saved yet and
// returns nil; other read or decode failures are errors.
func (s *FileStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.WrapPetError(domain.ErrStoreRead, fmt.Errorf("read state: %w", err))
	}

	var snap domain.Snapshot
	if err := s.Codec.Unmarshal(data, &snap); err != nil {
		return nil, domain.WrapPetError(domain.ErrSnapshotCorrupt, fmt.Errorf("decode %s: %w", s.Path, err))
	}
	return &snap, nil
}
