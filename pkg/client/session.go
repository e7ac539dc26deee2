package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Session is the caller's auth context. It is passed explicitly to the
// pieces that need it; there is no package-level current-user state.
type Session struct {
	FirebaseUID string
	UserType    string
	Token       string
}

// NewSession builds a session from a login result.
func NewSession(res *AuthResult) *Session {
	return &Session{
		FirebaseUID: res.User.FirebaseUID,
		UserType:    res.User.UserType,
		Token:       res.Token,
	}
}

// Pending-signup keys. The signup flow spans several screens and an app
// restart can land in the middle of it, so the values persist on disk.
const (
	PendingUserTypeKey    = "pendingUserType"
	PendingEmailKey       = "pendingEmail"
	PendingFirebaseUIDKey = "pendingFirebaseUid"
)

// PendingSignup is a small file-backed key-value store for in-flight signup
// state.
type PendingSignup struct {
	mu   sync.Mutex
	path string
}

// NewPendingSignup stores pending state at the given file path, creating
// parent directories as needed.
func NewPendingSignup(path string) (*PendingSignup, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &PendingSignup{path: path}, nil
}

func (p *PendingSignup) load() (map[string]string, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	values := map[string]string{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			// A corrupt file is treated as empty rather than wedging signup.
			return map[string]string{}, nil
		}
	}
	return values, nil
}

func (p *PendingSignup) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0600)
}

// Set writes one key, preserving the rest.
func (p *PendingSignup) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	values, err := p.load()
	if err != nil {
		return err
	}
	values[key] = value
	return p.save(values)
}

// Get returns the stored value, or "" when absent.
func (p *PendingSignup) Get(key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	values, err := p.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Clear wipes all pending signup state, typically after the flow completes.
func (p *PendingSignup) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := os.Remove(p.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
