package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/platewise/platewise/internal/domain"
)

func TestProfileService_Get(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty profile when none saved", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("GetByUser", ctx, userID).Return(nil, nil)

		svc := NewProfileService(repo)

		profile, err := svc.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, userID, profile.UserID)
		assert.Equal(t, uuid.Nil, profile.ID)
	})
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first write creates the profile", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("GetByUser", ctx, userID).Return(nil, nil)
		repo.On("Upsert", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)

		svc := NewProfileService(repo)

		name := "Sam"
		profile, err := svc.Update(ctx, userID, domain.ProfileUpdate{FirstName: &name})
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, profile.ID)
		assert.Equal(t, "Sam", profile.FirstName)
		repo.AssertExpectations(t)
	})

	t.Run("nil fields are left untouched", func(t *testing.T) {
		existing := &domain.Profile{
			ID:        uuid.New(),
			UserID:    userID,
			FirstName: "Sam",
			ZipCode:   "94103",
		}

		repo := new(MockProfileRepository)
		repo.On("GetByUser", ctx, userID).Return(existing, nil)
		repo.On("Upsert", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)

		svc := NewProfileService(repo)

		weight := "72"
		profile, err := svc.Update(ctx, userID, domain.ProfileUpdate{WeightKG: &weight})
		assert.NoError(t, err)
		assert.Equal(t, "Sam", profile.FirstName)
		assert.Equal(t, "94103", profile.ZipCode)
		assert.Equal(t, "72", profile.WeightKG)
	})
}
