package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

func newAdminFixture() (*fakeCreatorRepo, *fakeJobRepo, *fakeUserRepo, AdminService) {
	creatorRepo := newFakeCreatorRepo()
	jobRepo := newFakeJobRepo()
	userRepo := newFakeUserRepo()
	svc := NewAdminService(creatorRepo, jobRepo, &fakeContactRepo{}, &fakeInvitationRepo{}, userRepo, nil)
	return creatorRepo, jobRepo, userRepo, svc
}

func TestDeleteCreator_PurgesLinkedAccount(t *testing.T) {
	creatorRepo, _, userRepo, svc := newAdminFixture()

	u := &models.User{Email: "asha@example.com", Role: models.UserRoleCreator}
	require.NoError(t, userRepo.Create(u))
	require.NoError(t, userRepo.CreateRefreshToken(&models.RefreshToken{
		UserID: u.ID, Token: "tok-1",
	}))
	c := creatorRepo.add(&models.Creator{
		LinkedUserID: &u.ID, FullName: "Asha Verma", Status: models.CreatorStatusApproved,
	})

	require.NoError(t, svc.DeleteCreator(context.Background(), c.ID))

	_, err := creatorRepo.FindByID(c.ID)
	assert.True(t, apperrors.Is(err, repositories.ErrCreatorNotFound))
	_, err = userRepo.FindByID(u.ID)
	assert.True(t, apperrors.Is(err, repositories.ErrUserNotFound))
	_, err = userRepo.FindRefreshToken("tok-1")
	assert.Error(t, err)
}

func TestDeleteCreator_UnlinkedProfile(t *testing.T) {
	creatorRepo, _, _, svc := newAdminFixture()
	c := creatorRepo.add(&models.Creator{
		FullName: "Walk-in Profile", Status: models.CreatorStatusPending,
	})

	require.NoError(t, svc.DeleteCreator(context.Background(), c.ID))

	_, err := creatorRepo.FindByID(c.ID)
	assert.True(t, apperrors.Is(err, repositories.ErrCreatorNotFound))
}

func TestDeleteCreator_UnknownID(t *testing.T) {
	_, _, _, svc := newAdminFixture()

	err := svc.DeleteCreator(context.Background(), "no-such-creator")
	assert.True(t, apperrors.Is(err, apperrors.ErrCreatorNotFound))
}
