package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/validate"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
)

// ProfileService manages the user profile and weekly goal preferences
type ProfileService struct {
	store *PersistedStore
}

// NewProfileService creates a ProfileService
func NewProfileService(store *PersistedStore) *ProfileService {
	return &ProfileService{store: store}
}

// GetProfile returns the stored profile, empty when none is set
func (s *ProfileService) GetProfile(ctx context.Context) (domain.Profile, error) {
	return s.store.LoadProfile(ctx)
}

// SetProfile validates and stores the profile
func (s *ProfileService) SetProfile(ctx context.Context, name, email string) (domain.Profile, error) {
	profile := domain.Profile{
		Email: strings.TrimSpace(email),
		Name:  strings.TrimSpace(name),
	}

	v := validate.Struct(&profile)
	if !v.Validate() {
		logging.Logger.Warn("Rejected profile", "errors", v.Errors.String())
		return domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrInvalidProfile, v.Errors.One())
	}

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	logging.Logger.Info("Profile updated", "has_name", profile.Name != "", "has_email", profile.Email != "")
	return profile, nil
}

// GetWeeklyGoal returns the stored goal or the default
func (s *ProfileService) GetWeeklyGoal(ctx context.Context) (domain.WeeklyGoal, error) {
	return s.store.LoadWeeklyGoal(ctx)
}

// SetWeeklyGoal parses and stores a new goal. Non-numeric or non-positive
// input returns ErrInvalidGoal and leaves the stored value untouched.
func (s *ProfileService) SetWeeklyGoal(ctx context.Context, input string) (domain.WeeklyGoal, error) {
	target, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return domain.WeeklyGoal{}, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidGoal, input)
	}
	goal, err := domain.NewWeeklyGoal(target)
	if err != nil {
		return domain.WeeklyGoal{}, fmt.Errorf("%w: %d must be positive", err, target)
	}

	if err := s.store.SaveWeeklyGoal(ctx, goal); err != nil {
		return domain.WeeklyGoal{}, err
	}
	logging.Logger.Info("Weekly goal updated", "target", goal.TargetSessions)
	return goal, nil
}
