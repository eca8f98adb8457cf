package repository

import (
	"schoolrate/internal/http-api/models"

	"gorm.io/gorm"
)

// AdminRepository reads the admin marker set. The table is maintained out of
// band; the application never writes to it.
type AdminRepository interface {
	IsAdmin(username string) (bool, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) IsAdmin(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Admin{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}
