package repositories

import (
	"gorm.io/gorm"

	"smartadmin_backend/internal/models"
)

// MemberFilters - фильтры списка участников
type MemberFilters struct {
	Search string
	Grade  models.MemberGrade
	Page   int
	Limit  int
}

// DailyCount - количество записей за день
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type MemberRepository interface {
	FindWithFilters(filters MemberFilters) ([]models.Member, int64, error)
	FindByID(id string) (*models.Member, error)
	FindByIDs(ids []string) ([]models.Member, error)
	Update(member *models.Member) error
	CountActive() (int64, error)
	DailySignups(days int) ([]DailyCount, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// FindWithFilters возвращает страницу участников и общее количество.
// Поиск — регистронезависимое вхождение по имени или email.
func (r *memberRepository) FindWithFilters(filters MemberFilters) ([]models.Member, int64, error) {
	query := r.db.Model(&models.Member{})

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if filters.Grade != "" {
		query = query.Where("grade = ?", filters.Grade)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filters.Page - 1) * filters.Limit

	var members []models.Member
	err := query.
		Order("created_at DESC").
		Limit(filters.Limit).
		Offset(offset).
		Preload("Payments").
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

func (r *memberRepository) FindByID(id string) (*models.Member, error) {
	var member models.Member
	err := r.db.
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("paid_at DESC")
		}).
		First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByIDs(ids []string) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Where("id IN ?", ids).Find(&members).Error
	return members, err
}

func (r *memberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Member{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// DailySignups возвращает количество регистраций по дням за последние days дней
func (r *memberRepository) DailySignups(days int) ([]DailyCount, error) {
	var rows []DailyCount
	err := r.db.Model(&models.Member{}).
		Select("DATE(created_at)::text AS date, COUNT(id) AS count").
		Where("created_at >= CURRENT_DATE - ?::int", days).
		Group("DATE(created_at)").
		Order("DATE(created_at) ASC").
		Scan(&rows).Error
	return rows, err
}
