// Package credstore persists the credential record between application runs:
// the access token, refresh token, and cached user profile.
//
// The record is all-or-nothing. A missing file, unparseable contents, or any
// missing field loads as ErrNotFound so a damaged record can never be
// partially trusted; the caller falls back to full re-authentication.
package credstore

import (
	"errors"
	"strings"
	"sync"

	sdk "github.com/caselink/caselink-go"
)

// ErrNotFound is returned by Load when no complete credential record exists.
var ErrNotFound = errors.New("credstore: credentials not found")

// Record is the persisted credential set.
type Record struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	User         sdk.UserProfile `json:"user"`
}

func (r Record) complete() bool {
	return strings.TrimSpace(r.AccessToken) != "" &&
		strings.TrimSpace(r.RefreshToken) != "" &&
		strings.TrimSpace(r.User.ID) != ""
}

// Store saves and loads the credential record. Save and Clear replace the
// record as a unit; Load never returns a partial record.
type Store interface {
	Save(rec Record) error
	Load() (Record, error)
	Clear() error
}

// Memory is an in-process Store for tests and embedding callers.
type Memory struct {
	mu  sync.Mutex
	rec *Record
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Save replaces the stored record.
func (m *Memory) Save(rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := rec
	m.rec = &copied
	return nil
}

// Load returns the stored record, or ErrNotFound when absent or incomplete.
func (m *Memory) Load() (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil || !m.rec.complete() {
		return Record{}, ErrNotFound
	}
	return *m.rec, nil
}

// Clear drops the stored record.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = nil
	return nil
}
