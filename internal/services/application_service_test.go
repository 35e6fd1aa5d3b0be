package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/pkg/apperrors"
)

func newApplicationFixture(t *testing.T) (*fakeCreatorRepo, *fakeJobRepo, *fakeApplicationRepo, ApplicationService) {
	t.Helper()
	creatorRepo := newFakeCreatorRepo()
	jobRepo := newFakeJobRepo()
	appRepo := &fakeApplicationRepo{}
	svc := NewApplicationService(appRepo, creatorRepo, jobRepo)
	return creatorRepo, jobRepo, appRepo, svc
}

func TestApply_Success(t *testing.T) {
	creatorRepo, jobRepo, _, svc := newApplicationFixture(t)
	seedCreator(creatorRepo, "u1", models.TierBase)
	require.NoError(t, jobRepo.Create(&models.Job{Title: "Shoot", City: "Mumbai"}))

	app, err := svc.Apply("u1", "job-1", &dto.ApplicationRequest{CoverLetter: "I am available."})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, "job-1", app.JobID)
}

func TestApply_DuplicateRejected(t *testing.T) {
	creatorRepo, jobRepo, _, svc := newApplicationFixture(t)
	seedCreator(creatorRepo, "u1", models.TierBase)
	require.NoError(t, jobRepo.Create(&models.Job{Title: "Shoot", City: "Mumbai"}))

	_, err := svc.Apply("u1", "job-1", &dto.ApplicationRequest{})
	require.NoError(t, err)

	_, err = svc.Apply("u1", "job-1", &dto.ApplicationRequest{})
	assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateApplication))
}

func TestApply_JobMissing(t *testing.T) {
	creatorRepo, _, _, svc := newApplicationFixture(t)
	seedCreator(creatorRepo, "u1", models.TierBase)

	_, err := svc.Apply("u1", "job-404", &dto.ApplicationRequest{})
	assert.True(t, apperrors.Is(err, apperrors.ErrJobNotFound))
}

func TestApply_WithoutProfile(t *testing.T) {
	_, jobRepo, _, svc := newApplicationFixture(t)
	require.NoError(t, jobRepo.Create(&models.Job{Title: "Shoot", City: "Mumbai"}))

	_, err := svc.Apply("stranger", "job-1", &dto.ApplicationRequest{})
	assert.True(t, apperrors.Is(err, apperrors.ErrNeedsOnboarding))
}

func TestListOwnApplications(t *testing.T) {
	creatorRepo, jobRepo, _, svc := newApplicationFixture(t)
	seedCreator(creatorRepo, "u1", models.TierBase)
	seedCreator(creatorRepo, "u2", models.TierBase)
	require.NoError(t, jobRepo.Create(&models.Job{Title: "Shoot", City: "Mumbai"}))
	require.NoError(t, jobRepo.Create(&models.Job{Title: "Edit", City: "Delhi"}))

	_, err := svc.Apply("u1", "job-1", &dto.ApplicationRequest{})
	require.NoError(t, err)
	_, err = svc.Apply("u2", "job-2", &dto.ApplicationRequest{})
	require.NoError(t, err)

	own, err := svc.ListOwn("u1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "job-1", own[0].JobID)
}
