// Package filestore keeps saved rosters as JSON files in one directory, one
// file per storage key.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"giftexchange/internal/core/domain/model/kernel"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/ports"
	"giftexchange/internal/pkg/errs"
)

const fileSuffix = ".json"

var _ ports.RosterRepository = (*Repository)(nil)

// Repository stores rosters as <dir>/<key>.json.
//
// Files holding a bare JSON array of groups are read as well; they get a
// fresh id, their key as name and the file modification time as saved time.
type Repository struct {
	dir string
	mu  sync.RWMutex
}

// NewRepository creates dir when missing.
func NewRepository(dir string) (*Repository, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errs.NewValueIsRequiredError("roster dir")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create roster dir: %w", err)
	}
	return &Repository{dir: dir}, nil
}

func (r *Repository) Save(ctx context.Context, rs *roster.Roster) error {
	if err := rs.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rosterFileDTO{
		ID:      rs.ID().String(),
		Name:    rs.Name(),
		SavedAt: rs.SavedAt(),
		Groups:  groupsToDTO(rs.Groups()),
	}, "", "  ")
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(r.dir, ".roster-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), r.path(rs.Key()))
}

func (r *Repository) Get(ctx context.Context, name string) (*roster.Roster, error) {
	key := roster.Key(name)
	if key == "" {
		return nil, roster.ErrNameIsRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	path := r.path(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.NewObjectNotFoundError("roster", key)
	}
	if err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		return r.legacy(path, key, trimmed)
	}

	var dto rosterFileDTO
	if err = json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return roster.RestoreRoster(id, dto.Name, groupsFromDTO(dto.Groups), dto.SavedAt)
}

func (r *Repository) legacy(path, key string, data []byte) (*roster.Roster, error) {
	var groups []groupFileDTO
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	return roster.NewRoster(key, groupsFromDTO(groups), info.ModTime())
}

// List returns the keys of every *.json file in the directory, sorted.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileSuffix) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), fileSuffix))
	}
	slices.Sort(keys)
	return keys, nil
}

func (r *Repository) path(key string) string {
	return filepath.Join(r.dir, key+fileSuffix)
}
