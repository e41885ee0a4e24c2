package db

import (
	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// FindOrCreate returns the owner's profile, creating one with default cycle
// parameters on first contact.
func (repo *ProfileRepository) FindOrCreate(ownerID string) (models.OwnerProfile, error) {
	profile := models.OwnerProfile{}
	result := repo.database.
		Where("owner_id = ?", ownerID).
		Limit(1).
		Find(&profile)
	if result.Error != nil {
		return models.OwnerProfile{}, result.Error
	}
	if result.RowsAffected > 0 {
		return profile, nil
	}

	profile = models.OwnerProfile{
		OwnerID:        ownerID,
		CycleLength:    models.DefaultCycleLength,
		PeriodDuration: models.DefaultPeriodDuration,
	}
	if err := repo.database.Create(&profile).Error; err != nil {
		return models.OwnerProfile{}, err
	}
	return profile, nil
}

func (repo *ProfileRepository) Save(profile *models.OwnerProfile) error {
	return repo.database.Save(profile).Error
}

// ListTrackedOwners returns the profiles eligible for cycle tracking, used
// by the reminder sweep.
func (repo *ProfileRepository) ListTrackedOwners() ([]models.OwnerProfile, error) {
	profiles := make([]models.OwnerProfile, 0)
	if err := repo.database.
		Where("sex = ?", models.SexFemale).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
