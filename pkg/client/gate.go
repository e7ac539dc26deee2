package client

// AccountUnderReviewWarning is shown verbatim whenever a gated action is
// blocked. The backend returns the same text from its own gate.
const AccountUnderReviewWarning = "Account Under Review. Please wait for admin approval before performing this action."

// ActionGate blocks marketplace actions until the account has a complete
// profile and admin verification. Being blocked is a normal state, not an
// error.
type ActionGate struct {
	cache *VerificationCache
	warn  func(string)
}

// NewActionGate wires the gate to a verification cache and a warn sink
// (usually a toast or snackbar). A nil sink drops warnings.
func NewActionGate(cache *VerificationCache, warn func(string)) *ActionGate {
	if warn == nil {
		warn = func(string) {}
	}
	return &ActionGate{cache: cache, warn: warn}
}

// Guard runs the action only when both cached flags are true. When blocked
// it emits the fixed warning and reports false; the action is never
// invoked.
func (g *ActionGate) Guard(action func()) bool {
	status := g.cache.Status()
	if !status.ProfileExists || !status.IsVerified {
		g.warn(AccountUnderReviewWarning)
		return false
	}
	action()
	return true
}
