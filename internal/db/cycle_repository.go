package db

import (
	"errors"

	"github.com/selene-health/selene/internal/models"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("cycle record not found")

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

// ListByOwner returns all cycle records for an owner, newest start date
// first. Derived-field computation relies on this ordering.
func (repo *CycleRepository) ListByOwner(ownerID string) ([]models.CycleRecord, error) {
	records := make([]models.CycleRecord, 0)
	if err := repo.database.
		Where("owner_id = ?", ownerID).
		Order("start_date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRepository) ListRecentByOwner(ownerID string, limit int) ([]models.CycleRecord, error) {
	records := make([]models.CycleRecord, 0)
	if err := repo.database.
		Where("owner_id = ?", ownerID).
		Order("start_date DESC, id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRepository) FindByOwnerAndID(ownerID string, id string) (models.CycleRecord, error) {
	record := models.CycleRecord{}
	result := repo.database.
		Where("owner_id = ? AND id = ?", ownerID, id).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.CycleRecord{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleRecord{}, ErrRecordNotFound
	}
	return record, nil
}

func (repo *CycleRepository) ExistsByOwnerAndStartDate(ownerID string, record models.CycleRecord) (bool, error) {
	var count int64
	query := repo.database.Model(&models.CycleRecord{}).
		Where("owner_id = ? AND start_date = ?", ownerID, record.StartDate)
	if record.ID != "" {
		query = query.Where("id <> ?", record.ID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *CycleRepository) Create(record *models.CycleRecord) error {
	return repo.database.Create(record).Error
}

func (repo *CycleRepository) Save(record *models.CycleRecord) error {
	return repo.database.Save(record).Error
}

// Delete removes a record without touching siblings' derived fields; they
// stay frozen at the time of their last save.
func (repo *CycleRepository) Delete(ownerID string, id string) error {
	result := repo.database.
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&models.CycleRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
