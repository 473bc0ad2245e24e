package service

import (
	"sync"
	"time"
)

type codeEntry struct {
	code      string
	expiresAt time.Time
}

// CodeStore holds pending phone verification codes in process memory.
// Sending a new code for a phone number overwrites any previous one; a code
// is removed once it is successfully consumed. Entries expire after the
// configured TTL (a TTL of zero disables expiry).
type CodeStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	codes map[string]codeEntry
	now   func() time.Time
}

// NewCodeStore creates a CodeStore with the given per-entry TTL
func NewCodeStore(ttl time.Duration) *CodeStore {
	return &CodeStore{
		ttl:   ttl,
		codes: make(map[string]codeEntry),
		now:   time.Now,
	}
}

// Put stores a code for a phone number, replacing any previous code
func (s *CodeStore) Put(phoneNumber, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := codeEntry{code: code}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}
	s.codes[phoneNumber] = entry
}

// Consume checks the submitted code against the stored one. On a match the
// entry is deleted and true is returned; on a mismatch the entry is left
// untouched so the caller may retry. Expired entries never match.
func (s *CodeStore) Consume(phoneNumber, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[phoneNumber]
	if !ok {
		return false
	}
	if !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt) {
		delete(s.codes, phoneNumber)
		return false
	}
	if entry.code != code {
		return false
	}
	delete(s.codes, phoneNumber)
	return true
}
