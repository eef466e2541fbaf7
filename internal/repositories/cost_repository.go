package repositories

import (
	"time"

	"gorm.io/gorm"

	"smartadmin_backend/internal/models"
)

type CostRepository interface {
	Create(cost *models.Cost) error
	FindInRange(start, end *time.Time) ([]models.Cost, error)
}

type costRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) CostRepository {
	return &costRepository{db: db}
}

func (r *costRepository) Create(cost *models.Cost) error {
	return r.db.Create(cost).Error
}

// FindInRange возвращает расходы за период (границы включительно), новые первыми
func (r *costRepository) FindInRange(start, end *time.Time) ([]models.Cost, error) {
	query := r.db.Model(&models.Cost{})

	if start != nil && end != nil {
		query = query.Where("date BETWEEN ? AND ?", start, end)
	}

	var costs []models.Cost
	err := query.Order("date DESC").Find(&costs).Error
	return costs, err
}
