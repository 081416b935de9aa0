package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deleteByID returns gorm.ErrRecordNotFound when nothing was deleted
func deleteByID(db *gorm.DB, model interface{}, id uuid.UUID) error {
	res := db.Delete(model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func normalizePage(page, pageSize, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 12
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}
