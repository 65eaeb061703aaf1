package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scribekit/scribe/internal/domain"
	"github.com/scribekit/scribe/internal/mocks"
)

var testPolicy = domain.QuotaPolicy{Floor: 1000, TrialLimit: 25000}

func TestUsageGuard_Admit_SelfHealsStaleLimit(t *testing.T) {
	ctx := context.Background()
	mockUsers := mocks.NewMockUserStore(t)

	user := &domain.User{ID: "u1", Email: "a@b.c", WordsUsed: 0, WordLimit: 0, Plan: domain.PlanNone}

	mockUsers.EXPECT().
		RaiseQuota(mock.Anything, "u1", 25000, domain.PlanTrial).
		Return(nil)

	guard := domain.NewUsageGuard(mockUsers, testPolicy)

	err := guard.Admit(ctx, user)
	require.NoError(t, err)
	require.Equal(t, 25000, user.WordLimit)
	require.Equal(t, domain.PlanTrial, user.Plan)
}

func TestUsageGuard_Admit_SelfHealIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mockUsers := mocks.NewMockUserStore(t)

	// Limit already at the trial ceiling: no RaiseQuota call may happen.
	user := &domain.User{ID: "u1", WordsUsed: 10, WordLimit: 25000, Plan: domain.PlanTrial}

	guard := domain.NewUsageGuard(mockUsers, testPolicy)

	err := guard.Admit(ctx, user)
	require.NoError(t, err)
	require.Equal(t, 25000, user.WordLimit)
}

func TestUsageGuard_Admit_DeniesAtLimit(t *testing.T) {
	ctx := context.Background()
	mockUsers := mocks.NewMockUserStore(t)

	user := &domain.User{ID: "u1", WordsUsed: 25000, WordLimit: 25000, Plan: domain.PlanTrial}

	guard := domain.NewUsageGuard(mockUsers, testPolicy)

	err := guard.Admit(ctx, user)
	require.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestUsageGuard_Admit_AllowsStrictlyBelowLimit(t *testing.T) {
	ctx := context.Background()
	mockUsers := mocks.NewMockUserStore(t)

	user := &domain.User{ID: "u1", WordsUsed: 24999, WordLimit: 25000, Plan: domain.PlanTrial}

	guard := domain.NewUsageGuard(mockUsers, testPolicy)

	require.NoError(t, guard.Admit(ctx, user))
}

func TestUsageGuard_Admit_RaiseFailurePropagates(t *testing.T) {
	ctx := context.Background()
	mockUsers := mocks.NewMockUserStore(t)

	user := &domain.User{ID: "u1", WordLimit: 0}

	mockUsers.EXPECT().
		RaiseQuota(mock.Anything, "u1", 25000, domain.PlanTrial).
		Return(errors.New("store down"))

	guard := domain.NewUsageGuard(mockUsers, testPolicy)

	err := guard.Admit(ctx, user)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestUsageGuard_Finalize_CountsWhitespaceTokens(t *testing.T) {
	ctx := context.Background()
	mockUsers := mocks.NewMockUserStore(t)

	user := &domain.User{ID: "u1", WordLimit: 25000}

	mockUsers.EXPECT().
		IncrementUsage(mock.Anything, "u1", 2).
		Return(nil)

	guard := domain.NewUsageGuard(mockUsers, testPolicy)

	words, err := guard.Finalize(ctx, user, "Hello   world\n")
	require.NoError(t, err)
	require.Equal(t, 2, words)
}

func TestUsageGuard_Finalize_EmptyTextChargesNothing(t *testing.T) {
	ctx := context.Background()
	mockUsers := mocks.NewMockUserStore(t)

	user := &domain.User{ID: "u1", WordLimit: 25000}

	guard := domain.NewUsageGuard(mockUsers, testPolicy)

	words, err := guard.Finalize(ctx, user, "  \n\t ")
	require.NoError(t, err)
	require.Zero(t, words)
}

func TestCountWords(t *testing.T) {
	require.Equal(t, 0, domain.CountWords(""))
	require.Equal(t, 1, domain.CountWords("word"))
	require.Equal(t, 2, domain.CountWords("Hello   world\n"))
	require.Equal(t, 3, domain.CountWords("  a\tb\nc  "))
}
