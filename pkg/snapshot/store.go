/*
 *     Copyright 2025 The CNAI Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

const (
	// ArchivePrefix is the filename prefix of dated snapshot archives.
	ArchivePrefix = "hf_data_"

	// LatestFile always mirrors the most recent snapshot.
	LatestFile = "latest.json"

	// lockFile guards persistence against an overlapping scheduled run.
	lockFile = ".trendctl.lock"

	// fileLockRetryDelay is the delay between retries when acquiring the
	// file lock.
	fileLockRetryDelay = 100 * time.Millisecond
)

// ErrNotFound is returned when no snapshot exists in the store.
var ErrNotFound = errors.New("snapshot not found")

// Store reads and writes snapshot files under a single data directory.
//
// The naming contract is fixed: dated archives are named
// "hf_data_<date>.json" and "latest.json" mirrors the newest one. Directory
// scanning is used only for the archive listing and history features.
type Store struct {
	dir   string
	flock *flock.Flock
}

// NewStore creates a snapshot store rooted at dir, creating the directory
// when needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Store{
		dir:   dir,
		flock: flock.New(filepath.Join(dir, lockFile)),
	}, nil
}

// Dir returns the data directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// ArchiveName returns the dated archive filename for a date key.
func ArchiveName(date string) string {
	return ArchivePrefix + date + ".json"
}

// Persist writes the dated archive and overwrites the latest pointer. Both
// writes go through a temp file and rename so a concurrent reader never
// observes a partial snapshot.
func (s *Store) Persist(ctx context.Context, snap *Snapshot) error {
	locked, err := s.flock.TryLockContext(ctx, fileLockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire snapshot lock: %w", err)
	}
	if !locked {
		return errors.New("snapshot lock held by another process")
	}
	defer func() { _ = s.flock.Unlock() }()

	if err := s.writeAtomic(ArchiveName(snap.Date), snap); err != nil {
		return err
	}

	return s.writeAtomic(LatestFile, snap)
}

func (s *Store) writeAtomic(name string, snap *Snapshot) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp snapshot file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod snapshot file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to rename snapshot file: %w", err)
	}

	return nil
}

// LoadLatest returns the most recent snapshot. It reads the latest pointer
// and falls back to the newest dated archive when the pointer is missing.
// Returns ErrNotFound when the store holds no snapshot at all.
func (s *Store) LoadLatest() (*Snapshot, error) {
	snap, err := s.load(LatestFile)
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	dates, err := s.ListArchives()
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, ErrNotFound
	}

	return s.LoadDate(dates[len(dates)-1])
}

// LoadDate returns the archived snapshot for one date key.
func (s *Store) LoadDate(date string) (*Snapshot, error) {
	snap, err := s.load(ArchiveName(date))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}

	return snap, err
}

func (s *Store) load(name string) (*Snapshot, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}

	return &snap, nil
}

// ListArchives returns the date keys of all archived snapshots, sorted
// ascending.
func (s *Store) ListArchives() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	var dates []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, ArchivePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}

		date := strings.TrimSuffix(strings.TrimPrefix(name, ArchivePrefix), ".json")
		if date != "" {
			dates = append(dates, date)
		}
	}

	sort.Strings(dates)
	return dates, nil
}

// LoadHistory loads up to limit archived snapshots, newest last. Archives
// that fail to decode are skipped.
func (s *Store) LoadHistory(limit int) ([]*Snapshot, error) {
	dates, err := s.ListArchives()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(dates) > limit {
		dates = dates[len(dates)-limit:]
	}

	history := make([]*Snapshot, 0, len(dates))
	for _, date := range dates {
		snap, err := s.LoadDate(date)
		if err != nil {
			continue
		}
		history = append(history, snap)
	}

	return history, nil
}
