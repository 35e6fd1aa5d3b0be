package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parths301/aib-hub/internal/models"
)

func TestQuota(t *testing.T) {
	assert.Equal(t, 0, Quota(models.TierBase))
	assert.Equal(t, 1, Quota(models.TierGold))
	assert.Equal(t, 3, Quota(models.TierPlatinum))
	assert.Equal(t, 0, Quota(models.MembershipTier("DIAMOND")))
}

func TestCanAddTag(t *testing.T) {
	assert.False(t, CanAddTag(models.TierBase, nil))
	assert.True(t, CanAddTag(models.TierGold, nil))
	assert.False(t, CanAddTag(models.TierGold, []string{"Video Editor"}))
	assert.True(t, CanAddTag(models.TierPlatinum, []string{"Video Editor", "Logo Creator"}))
	assert.False(t, CanAddTag(models.TierPlatinum, []string{"a", "b", "c"}))
}

// A downgrade below the current tag count must not allow further adds, but
// the check itself never mutates the existing set.
func TestCanAddTag_AfterDowngrade(t *testing.T) {
	tags := []string{"Video Editor"}
	assert.False(t, CanAddTag(models.TierBase, tags))
	assert.Len(t, tags, 1)
}

func TestRank(t *testing.T) {
	assert.Negative(t, Rank(models.TierPlatinum, models.TierGold))
	assert.Negative(t, Rank(models.TierPlatinum, models.TierBase))
	assert.Negative(t, Rank(models.TierGold, models.TierBase))
	assert.Positive(t, Rank(models.TierBase, models.TierPlatinum))
	assert.Zero(t, Rank(models.TierGold, models.TierGold))
	assert.Zero(t, Rank(models.TierBase, models.TierBase))
}

func TestIsPremiumAndBadge(t *testing.T) {
	assert.False(t, IsPremium(models.TierBase))
	assert.True(t, IsPremium(models.TierGold))
	assert.True(t, IsPremium(models.TierPlatinum))
	assert.False(t, IsPremium(models.MembershipTier("SILVER")))

	assert.Equal(t, "", Badge(models.TierBase))
	assert.Equal(t, "GOLD", Badge(models.TierGold))
	assert.Equal(t, "PLATINUM", Badge(models.TierPlatinum))
}
