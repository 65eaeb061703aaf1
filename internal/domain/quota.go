package domain

import (
	"context"
	"fmt"
	"strings"
)

// QuotaPolicy holds the word-quota thresholds.
//
// Floor is the sanity floor below which a stored limit is considered stale
// (accounts provisioned before quotas existed); TrialLimit is the ceiling
// such accounts are raised to.
type QuotaPolicy struct {
	Floor      int
	TrialLimit int
}

// UsageGuard owns admission and finalization of the per-user word quota. The
// counter itself lives in the store; the guard is the only code path that
// mutates it.
type UsageGuard struct {
	users  UserStore
	policy QuotaPolicy
}

// NewUsageGuard creates a usage guard (DI constructor).
func NewUsageGuard(users UserStore, policy QuotaPolicy) *UsageGuard {
	return &UsageGuard{
		users:  users,
		policy: policy,
	}
}

// Admit checks whether the user may start a generation. A stale limit is
// first raised to the trial ceiling and the plan marked TRIAL; the check
// re-runs harmlessly on every call since the raised limit clears the floor.
//
// Admission is check-then-act with no lock held across the generation:
// concurrent requests from one user can both be admitted and both charge
// their words later. The quota is a soft ceiling, not a concurrency barrier.
func (g *UsageGuard) Admit(ctx context.Context, user *User) error {
	if user.WordLimit < g.policy.Floor {
		if err := g.users.RaiseQuota(ctx, user.ID, g.policy.TrialLimit, PlanTrial); err != nil {
			return fmt.Errorf("failed to raise stale quota: %w", err)
		}
		user.WordLimit = g.policy.TrialLimit
		user.Plan = PlanTrial
	}

	if user.WordsUsed >= user.WordLimit {
		return ErrQuotaExceeded
	}

	return nil
}

// Finalize charges the completed generation against the user's quota and
// returns the word count. Runs exactly once per completed generation, after
// the full text is known; never incrementally during streaming.
func (g *UsageGuard) Finalize(ctx context.Context, user *User, producedText string) (int, error) {
	words := CountWords(producedText)
	if words == 0 {
		return 0, nil
	}

	if err := g.users.IncrementUsage(ctx, user.ID, words); err != nil {
		return 0, fmt.Errorf("failed to increment usage: %w", err)
	}

	return words, nil
}

// CountWords counts whitespace-delimited tokens in the trimmed text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
