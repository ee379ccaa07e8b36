package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"coinbot/models"
)

func TestCanClaim(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cooldown := 24 * time.Hour

	tests := []struct {
		name      string
		lastClaim *time.Time
		want      bool
	}{
		{"never claimed", nil, true},
		{"just claimed", &now, false},
		{"one second before boundary", timePtr(now.Add(-cooldown + time.Second)), false},
		{"exactly at boundary", timePtr(now.Add(-cooldown)), false},
		{"one second past boundary", timePtr(now.Add(-cooldown - time.Second)), true},
		{"long past boundary", timePtr(now.Add(-48 * time.Hour)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &models.Account{UserID: "u"}
			if tt.lastClaim != nil {
				account.Cooldowns = map[models.RewardKind]time.Time{
					models.RewardDaily: *tt.lastClaim,
				}
			}
			assert.Equal(t, tt.want, CanClaim(account, models.RewardDaily, cooldown, now))
		})
	}
}

func TestCanClaim_NilCooldownMap(t *testing.T) {
	account := &models.Account{UserID: "u"}
	assert.True(t, CanClaim(account, models.RewardWork, time.Hour, time.Now()))
}

func TestRollReward_WithinInclusiveRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cfg := RewardConfig{Min: 50, Max: 200}

	sawMin, sawMax := false, false
	for i := 0; i < 10000; i++ {
		amount := RollReward(r, cfg)
		assert.GreaterOrEqual(t, amount, int64(50))
		assert.LessOrEqual(t, amount, int64(200))
		if amount == 50 {
			sawMin = true
		}
		if amount == 200 {
			sawMax = true
		}
	}

	// Both endpoints of the inclusive range are reachable
	assert.True(t, sawMin, "expected to sample the minimum at least once")
	assert.True(t, sawMax, "expected to sample the maximum at least once")
}

func TestRollReward_DegenerateRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	assert.Equal(t, int64(7), RollReward(r, RewardConfig{Min: 7, Max: 7}))
	// A misconfigured inverted range falls back to the minimum
	assert.Equal(t, int64(9), RollReward(r, RewardConfig{Min: 9, Max: 3}))
}

func TestCooldownError_Message(t *testing.T) {
	err := &CooldownError{Kind: models.RewardDaily, Remaining: 90 * time.Minute}
	assert.ErrorIs(t, err, ErrCooldownActive)
	assert.Contains(t, err.Error(), "daily")
}

func timePtr(t time.Time) *time.Time {
	return &t
}
