package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func gateWith(status VerificationStatus) (*ActionGate, *[]string) {
	cache := &VerificationCache{status: status}
	warnings := []string{}
	gate := NewActionGate(cache, func(msg string) {
		warnings = append(warnings, msg)
	})
	return gate, &warnings
}

func TestGuardBlocksUnlessFullyVerified(t *testing.T) {
	tests := []struct {
		name    string
		status  VerificationStatus
		allowed bool
	}{
		{"no profile, not verified", VerificationStatus{false, false}, false},
		{"profile only", VerificationStatus{ProfileExists: true}, false},
		{"verified only", VerificationStatus{IsVerified: true}, false},
		{"profile and verified", VerificationStatus{ProfileExists: true, IsVerified: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, warnings := gateWith(tt.status)

			invoked := false
			ok := gate.Guard(func() { invoked = true })

			assert.Equal(t, tt.allowed, ok)
			assert.Equal(t, tt.allowed, invoked, "action invocation must match the gate result")
			if tt.allowed {
				assert.Empty(t, *warnings)
			} else {
				assert.Equal(t, []string{AccountUnderReviewWarning}, *warnings)
			}
		})
	}
}

func TestGuardNilWarnSink(t *testing.T) {
	cache := &VerificationCache{}
	gate := NewActionGate(cache, nil)

	assert.NotPanics(t, func() {
		assert.False(t, gate.Guard(func() { t.Fatal("action must not run") }))
	})
}
