package usecase

import (
	"context"
	"errors"

	"feathernote/model"
	"feathernote/repository"
)

type ExtrasService struct {
	SettingsRepo *repository.SettingsRepo
	ActivityRepo *repository.ActivityRepo
}

// defaultSettings applies until the user saves their own.
func defaultSettings(userID string) *model.Settings {
	return &model.Settings{
		UserID:        userID,
		Theme:         "system",
		Notifications: true,
		SortBy:        "updatedAt",
		SortOrder:     "desc",
	}
}

// GetSettings loads the user's settings, falling back to defaults when
// none have been saved yet.
func (svc *ExtrasService) GetSettings(ctx context.Context, userID string) (*model.Settings, error) {
	settings, err := svc.SettingsRepo.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return defaultSettings(userID), nil
		}
		return nil, err
	}
	return settings, nil
}

func (svc *ExtrasService) SaveSettings(ctx context.Context, userID string, settings *model.Settings) error {
	settings.UserID = userID
	return svc.SettingsRepo.SaveSettings(ctx, settings)
}

func (svc *ExtrasService) ListActivity(ctx context.Context, userID string) ([]*model.Activity, error) {
	return svc.ActivityRepo.GetUserActivity(ctx, userID)
}
