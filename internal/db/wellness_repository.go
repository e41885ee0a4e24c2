package db

import (
	"time"

	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

type WellnessRepository struct {
	database *gorm.DB
}

func NewWellnessRepository(database *gorm.DB) *WellnessRepository {
	return &WellnessRepository{database: database}
}

// Upsert stores the entry for its owner and day, replacing any existing
// entry for that day. One log per owner per calendar day.
func (repo *WellnessRepository) Upsert(entry *models.WellnessLog) error {
	existing := models.WellnessLog{}
	result := repo.database.
		Where("owner_id = ? AND date = ?", entry.OwnerID, entry.Date).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		return repo.database.Save(entry).Error
	}
	return repo.database.Create(entry).Error
}

func (repo *WellnessRepository) ListRecentByOwner(ownerID string, limit int) ([]models.WellnessLog, error) {
	logs := make([]models.WellnessLog, 0)
	if err := repo.database.
		Where("owner_id = ?", ownerID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *WellnessRepository) ListByOwnerRange(ownerID string, from *time.Time, to *time.Time) ([]models.WellnessLog, error) {
	query := repo.database.Model(&models.WellnessLog{}).Where("owner_id = ?", ownerID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date < ?", *to)
	}

	logs := make([]models.WellnessLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
