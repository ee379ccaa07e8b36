package service

import (
	"fmt"
	"math/rand"
	"time"

	"coinbot/models"
)

// CooldownError reports how long until a reward becomes claimable again.
type CooldownError struct {
	Kind      models.RewardKind
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s reward on cooldown for %s", e.Kind, e.Remaining.Round(time.Second))
}

func (e *CooldownError) Unwrap() error {
	return ErrCooldownActive
}

// CanClaim reports whether a reward of the given kind is claimable at now.
// Eligibility uses a rolling window with a strict comparison: a claim made
// exactly at lastClaim + cooldown is still blocked.
func CanClaim(account *models.Account, kind models.RewardKind, cooldown time.Duration, now time.Time) bool {
	last, ok := account.LastClaim(kind)
	if !ok {
		return true
	}
	return now.Sub(last) > cooldown
}

// RollReward returns a uniform random integer in the inclusive range
// [cfg.Min, cfg.Max].
func RollReward(r *rand.Rand, cfg RewardConfig) int64 {
	if cfg.Max <= cfg.Min {
		return cfg.Min
	}
	return cfg.Min + r.Int63n(cfg.Max-cfg.Min+1)
}
