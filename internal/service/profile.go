package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/platewise/internal/domain"
)

// ProfileService manages user health profiles
type ProfileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo domain.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Get returns the user's profile, or an empty one if none was saved yet
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return &domain.Profile{UserID: userID}, nil
	}
	return profile, nil
}

// Update applies a partial update, creating the profile on first write
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, input domain.ProfileUpdate) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	now := time.Now()
	if profile == nil {
		profile = &domain.Profile{
			ID:        uuid.New(),
			UserID:    userID,
			CreatedAt: now,
		}
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.Gender != nil {
		profile.Gender = *input.Gender
	}
	if input.ZipCode != nil {
		profile.ZipCode = *input.ZipCode
	}
	if input.WeightKG != nil {
		profile.WeightKG = *input.WeightKG
	}
	if input.HeightCM != nil {
		profile.HeightCM = *input.HeightCM
	}
	if input.Age != nil {
		profile.Age = input.Age
	}
	if input.DietaryRestrictions != nil {
		profile.DietaryRestrictions = *input.DietaryRestrictions
	}
	if input.BudgetConstraints != nil {
		profile.BudgetConstraints = *input.BudgetConstraints
	}
	if input.DietHealthGoals != nil {
		profile.DietHealthGoals = *input.DietHealthGoals
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	profile.UpdatedAt = now

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}
