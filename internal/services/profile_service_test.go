package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

// newProfileService wires the fake creator repo with the full seeded
// plan catalogue, which most tests don't care about.
func newProfileService(repo *fakeCreatorRepo) ProfileService {
	return NewProfileService(repo, &fakeMembershipRepo{plans: []models.MembershipPlan{
		{Tier: models.TierBase, Name: "Base", IsActive: true},
		{Tier: models.TierGold, Name: "Gold", IsActive: true},
		{Tier: models.TierPlatinum, Name: "Platinum", IsActive: true},
	}})
}

func seedCreator(repo *fakeCreatorRepo, userID string, tier models.MembershipTier, tags ...string) *models.Creator {
	return repo.add(&models.Creator{
		LinkedUserID:  &userID,
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		City:          "Mumbai",
		Tier:          tier,
		Status:        models.CreatorStatusApproved,
		PurchasedTags: tags,
	})
}

func TestToggleTag_BaseTierDenied(t *testing.T) {
	repo := newFakeCreatorRepo()
	seedCreator(repo, "u1", models.TierBase)
	svc := newProfileService(repo)

	_, err := svc.ToggleTag("u1", &dto.TagToggleRequest{Tag: "Wedding Films"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeLimitExceeded, appErr.Code)

	creator, _ := repo.FindByLinkedUserID("u1")
	assert.Empty(t, creator.PurchasedTags)
}

func TestToggleTag_GoldAddThenQuota(t *testing.T) {
	repo := newFakeCreatorRepo()
	seedCreator(repo, "u1", models.TierGold)
	svc := newProfileService(repo)

	out, err := svc.ToggleTag("u1", &dto.TagToggleRequest{Tag: "Wedding Films"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Wedding Films"}, out.PurchasedTags)

	_, err = svc.ToggleTag("u1", &dto.TagToggleRequest{Tag: "Drone Footage"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeLimitExceeded, appErr.Code)
}

func TestToggleTag_RemoveIsAlwaysAllowed(t *testing.T) {
	// Tags bought on PLATINUM survive a downgrade to BASE and can
	// still be removed, but nothing new may be added.
	repo := newFakeCreatorRepo()
	seedCreator(repo, "u1", models.TierBase, "Weddings", "Drone", "Color Grading")
	svc := newProfileService(repo)

	out, err := svc.ToggleTag("u1", &dto.TagToggleRequest{Tag: "Drone"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Weddings", "Color Grading"}, out.PurchasedTags)

	_, err = svc.ToggleTag("u1", &dto.TagToggleRequest{Tag: "New Tag"})
	require.Error(t, err)
}

func TestToggleTag_CaseInsensitiveMatch(t *testing.T) {
	repo := newFakeCreatorRepo()
	seedCreator(repo, "u1", models.TierGold, "Weddings")
	svc := newProfileService(repo)

	out, err := svc.ToggleTag("u1", &dto.TagToggleRequest{Tag: "weddings"})
	require.NoError(t, err)
	assert.Empty(t, out.PurchasedTags)
}

func TestChangeTier_PreservesTags(t *testing.T) {
	repo := newFakeCreatorRepo()
	seedCreator(repo, "u1", models.TierPlatinum, "A", "B", "C")
	svc := newProfileService(repo)

	out, err := svc.ChangeTier("u1", &dto.TierChangeRequest{Tier: "BASE"})
	require.NoError(t, err)
	assert.Equal(t, models.TierBase, out.Tier)
	assert.Equal(t, []string{"A", "B", "C"}, out.PurchasedTags)
}

func TestChangeTier_UnknownTier(t *testing.T) {
	repo := newFakeCreatorRepo()
	seedCreator(repo, "u1", models.TierBase)
	svc := newProfileService(repo)

	_, err := svc.ChangeTier("u1", &dto.TierChangeRequest{Tier: "DIAMOND"})
	assert.Error(t, err)
}

func TestChangeTier_RetiredPlanRejected(t *testing.T) {
	repo := newFakeCreatorRepo()
	seedCreator(repo, "u1", models.TierBase)
	svc := NewProfileService(repo, &fakeMembershipRepo{plans: []models.MembershipPlan{
		{Tier: models.TierBase, Name: "Base", IsActive: true},
		{Tier: models.TierGold, Name: "Gold", IsActive: false},
	}})

	_, err := svc.ChangeTier("u1", &dto.TierChangeRequest{Tier: "GOLD"})
	require.Error(t, err)

	_, err = svc.ChangeTier("u1", &dto.TierChangeRequest{Tier: "PLATINUM"})
	require.Error(t, err)

	stored, err := repo.FindByLinkedUserID("u1")
	require.NoError(t, err)
	assert.Equal(t, models.TierBase, stored.Tier)
}

func TestProfile_NeedsOnboarding(t *testing.T) {
	svc := newProfileService(newFakeCreatorRepo())

	_, err := svc.GetOwn("stranger")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNeedsOnboarding))
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	repo := newFakeCreatorRepo()
	seedCreator(repo, "u1", models.TierBase)
	svc := newProfileService(repo)

	bio := "Filmmaker from Mumbai"
	out, err := svc.Update("u1", &dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Filmmaker from Mumbai", out.Bio)
	assert.Equal(t, "Asha Verma", out.FullName)
	assert.Equal(t, "Mumbai", out.City)
}

func TestPortfolio_AddAndDelete(t *testing.T) {
	repo := newFakeCreatorRepo()
	seedCreator(repo, "u1", models.TierBase)
	svc := newProfileService(repo)

	item, err := svc.AddPortfolioItem("u1", &dto.PortfolioItemRequest{
		Type: "video",
		URL:  "https://example.com/reel.mp4",
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)

	require.NoError(t, svc.DeletePortfolioItem("u1", item.ID))

	err = svc.DeletePortfolioItem("u1", item.ID)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
