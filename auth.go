// Package sdk provides the CaseLink Go SDK for interacting with the CaseLink API.
package sdk

import (
	"net/http"
	"strings"
	"sync"
)

type authStrategy interface {
	Apply(req *http.Request)
}

type bearerAuth struct {
	token string
}

func (b bearerAuth) Apply(req *http.Request) {
	if b.token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+b.token)
}

// tokenPair holds the mutable access/refresh credentials shared by every
// outgoing request. Every mutation completes before a dependent request is
// issued, so no request observes a stale header.
type tokenPair struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func (t *tokenPair) set(access, refresh string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = trimBearer(access)
	t.refresh = strings.TrimSpace(refresh)
}

func (t *tokenPair) setAccess(access string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = trimBearer(access)
}

func (t *tokenPair) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = ""
	t.refresh = ""
}

func (t *tokenPair) accessToken() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.access
}

func (t *tokenPair) refreshToken() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.refresh
}

func trimBearer(token string) string {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
