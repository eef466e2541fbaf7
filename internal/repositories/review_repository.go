package repositories

import (
	"gorm.io/gorm"

	"smartadmin_backend/internal/models"
)

type ReviewRepository interface {
	FindAll() ([]models.Review, error)
	FindByID(id string) (*models.Review, error)
	Update(review *models.Review) error
	AverageVisibleRating() (float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) FindAll() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.
		Preload("Member").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// AverageVisibleRating - средний рейтинг видимых отзывов; 0 если отзывов нет
func (r *reviewRepository) AverageVisibleRating() (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Review{}).
		Select("AVG(rating)").
		Where("is_visible = ?", true).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
