package models

import (
	"fmt"
	"strings"
)

type SubscriptionLevel string

const (
	LevelFree     SubscriptionLevel = "free"
	LevelBasic    SubscriptionLevel = "basic"
	LevelExtended SubscriptionLevel = "extended"
	LevelPremium  SubscriptionLevel = "premium"
)

// Levels is the tier order, lowest first.
var Levels = []SubscriptionLevel{LevelFree, LevelBasic, LevelExtended, LevelPremium}

// Rank returns the position of l in the tier order, or -1 for unknown values.
func (l SubscriptionLevel) Rank() int {
	switch l {
	case LevelFree:
		return 0
	case LevelBasic:
		return 1
	case LevelExtended:
		return 2
	case LevelPremium:
		return 3
	default:
		return -1
	}
}

func (l SubscriptionLevel) Valid() bool {
	return l.Rank() >= 0
}

// Normalize returns l, or free when l is empty or unknown.
func (l SubscriptionLevel) Normalize() SubscriptionLevel {
	if !l.Valid() {
		return LevelFree
	}
	return l
}

func ParseSubscriptionLevel(s string) (SubscriptionLevel, error) {
	l := SubscriptionLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown subscription level: %q", s)
	}
	return l, nil
}

// IsContentUnlocked reports whether a user on userTier may open content that
// requires requiredTier. An unknown user tier counts as free; an unknown
// required tier is never unlocked.
//
// Every gating decision goes through this function.
func IsContentUnlocked(userTier, requiredTier SubscriptionLevel) bool {
	required := requiredTier.Rank()
	if required < 0 {
		return false
	}
	return userTier.Normalize().Rank() >= required
}
