// Package tier derives visibility ranking and tag-quota rules from a
// creator's membership tier.
package tier

import (
	"github.com/parths301/aib-hub/internal/models"
)

// Quota returns the purchased-tag allowance for a tier.
// Unknown tiers get the BASE allowance.
func Quota(t models.MembershipTier) int {
	switch t {
	case models.TierPlatinum:
		return 3
	case models.TierGold:
		return 1
	default:
		return 0
	}
}

// CanAddTag reports whether one more tag fits under the tier's quota.
// Existing tags above quota (after a downgrade) are grandfathered: removal
// is always allowed, only the next add is blocked.
func CanAddTag(t models.MembershipTier, current []string) bool {
	return len(current) < Quota(t)
}

// precedence orders tiers for directory ranking. Higher sorts first.
func precedence(t models.MembershipTier) int {
	switch t {
	case models.TierPlatinum:
		return 2
	case models.TierGold:
		return 1
	default:
		return 0
	}
}

// Rank compares two tiers for directory ordering: negative when a ranks
// before b, zero when equal. Equal tiers are a tie; callers must use a
// stable sort so source order is preserved.
func Rank(a, b models.MembershipTier) int {
	return precedence(b) - precedence(a)
}

// IsPremium reports whether the tier carries a premium badge.
func IsPremium(t models.MembershipTier) bool {
	return t != models.TierBase && ValidKnown(t)
}

// ValidKnown reports whether t is one of the three defined tiers.
func ValidKnown(t models.MembershipTier) bool {
	return models.ValidTier(t)
}

// Badge returns the badge copy for a tier, empty for BASE or unknown tiers.
// GOLD and PLATINUM differ in copy only; there is no separate entitlement.
func Badge(t models.MembershipTier) string {
	switch t {
	case models.TierPlatinum:
		return "PLATINUM"
	case models.TierGold:
		return "GOLD"
	default:
		return ""
	}
}
