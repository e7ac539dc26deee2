package client

import (
	"context"
	"sync"
)

// VerificationStatus is the pair of flags the action gate reads.
type VerificationStatus struct {
	ProfileExists bool
	IsVerified    bool
}

// VerificationCache holds the last fetched verification flags for one user.
// There is no TTL; callers refresh before guarded actions. Any failure to
// fetch leaves the flags false, so a network outage can never unlock a
// gated action.
type VerificationCache struct {
	client *Client

	mu     sync.RWMutex
	status VerificationStatus
}

func NewVerificationCache(client *Client) *VerificationCache {
	return &VerificationCache{client: client}
}

// Refresh fetches the account and updates the cached flags. A missing
// profile and a transport failure both resolve to {false, false}.
func (v *VerificationCache) Refresh(ctx context.Context, firebaseUID string) VerificationStatus {
	status := VerificationStatus{}

	user, err := v.client.GetUserProfile(ctx, firebaseUID)
	if err == nil && user != nil {
		status.ProfileExists = user.ProfileComplete
		status.IsVerified = user.IsVerified
	}

	v.mu.Lock()
	v.status = status
	v.mu.Unlock()
	return status
}

// Status returns the cached flags without a network round trip.
func (v *VerificationCache) Status() VerificationStatus {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.status
}
