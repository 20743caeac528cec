package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/career-navigator/apiserver/types"
)

// FileStore is the flat-file backend: a single JSON snapshot on disk
// mirrored in memory. The medium offers no native constraints, so every
// mutation runs inside one process-wide critical section; the duplicate
// check, the append and the persist are observed as one atomic unit.
// Reads serve the in-memory snapshot under a read lock.
type FileStore struct {
	path string

	mu    sync.RWMutex
	state fileState
}

type fileState struct {
	Accounts []fileAccount    `json:"accounts"`
	Jobs     []types.Job      `json:"jobs"`
	Progress []types.Progress `json:"progress"`
}

// fileAccount re-exposes the password hash, which types.Account hides
// from JSON, so the credential survives the round trip to disk.
type fileAccount struct {
	types.Account
	PasswordHash string `json:"password_hash"`
}

func (f fileAccount) account() types.Account {
	acct := f.Account
	acct.PasswordHash = f.PasswordHash
	return acct
}

// OpenFile loads the store at path, creating parent directories as
// needed. A missing file yields an empty store; an unreadable or corrupt
// one fails fast.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: filepath.Clean(path)}

	// Best effort here; an unwritable location surfaces per operation.
	if dir := filepath.Dir(s.path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, unavailable(err)
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		return nil, unavailable(err)
	}
	return s, nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) CreateAccount(_ context.Context, acct types.Account) (types.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.state.Accounts {
		if existing.Email == acct.Email {
			return types.Account{}, ErrDuplicateEmail
		}
	}

	next := s.state
	next.Accounts = append(append([]fileAccount(nil), s.state.Accounts...), fileAccount{
		Account:      acct,
		PasswordHash: acct.PasswordHash,
	})
	if err := s.persist(next); err != nil {
		return types.Account{}, err
	}
	s.state = next
	return acct, nil
}

func (s *FileStore) GetAccountByEmail(_ context.Context, email string) (types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.state.Accounts {
		if existing.Email == email {
			return existing.account(), nil
		}
	}
	return types.Account{}, ErrNotFound
}

func (s *FileStore) GetAccountByID(_ context.Context, id string) (types.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.state.Accounts {
		if existing.ID == id {
			return existing.account(), nil
		}
	}
	return types.Account{}, ErrNotFound
}

func (s *FileStore) CreateJob(_ context.Context, job types.Job) (types.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.Jobs = append(append([]types.Job(nil), s.state.Jobs...), job)
	if err := s.persist(next); err != nil {
		return types.Job{}, err
	}
	s.state = next
	return job, nil
}

func (s *FileStore) ListJobs(_ context.Context, ownerID string) ([]types.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]types.Job, 0)
	for _, job := range s.state.Jobs {
		if job.OwnerID == ownerID {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (s *FileStore) CreateProgress(_ context.Context, item types.Progress) (types.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.Progress = append(append([]types.Progress(nil), s.state.Progress...), item)
	if err := s.persist(next); err != nil {
		return types.Progress{}, err
	}
	s.state = next
	return item, nil
}

func (s *FileStore) ListProgress(_ context.Context, ownerID string) ([]types.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]types.Progress, 0)
	for _, item := range s.state.Progress {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	return items, nil
}

// persist writes the snapshot to a temporary file and renames it over the
// store path, so readers never observe a partial write. Called with the
// write lock held; the in-memory state is only replaced on success.
func (s *FileStore) persist(state fileState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return unavailable(err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return unavailable(err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return unavailable(err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return unavailable(err)
	}
	return nil
}
