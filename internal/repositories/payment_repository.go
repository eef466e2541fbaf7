package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smartadmin_backend/internal/models"
)

// PaymentFilters - фильтры выборки платежей.
// Диапазон дат включительный с обеих сторон.
type PaymentFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Source    models.PaymentSource
}

// DailyRevenue - выручка за день
type DailyRevenue struct {
	Date  string `json:"date"`
	Total int64  `json:"total"`
	Count int64  `json:"count"`
}

// PackageSales - продажи по пакету
type PackageSales struct {
	PackageName string `json:"packageName"`
	Count       int64  `json:"count"`
	Total       int64  `json:"total"`
}

// SourceBreakdown - выручка по источнику платежа
type SourceBreakdown struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
	Total  int64  `json:"total"`
}

type PaymentRepository interface {
	FindCompleted(filters PaymentFilters) ([]models.Payment, error)
	BulkCreate(payments []models.Payment) (int64, error)
	SumCompletedSince(since time.Time) (int64, error)
	DailyRevenue(days int) ([]DailyRevenue, error)
	PackageSales() ([]PackageSales, error)
	SourceBreakdown() ([]SourceBreakdown, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// FindCompleted возвращает завершённые платежи с фильтрами, новые первыми
func (r *paymentRepository) FindCompleted(filters PaymentFilters) ([]models.Payment, error) {
	query := r.db.Where("status = ?", models.PaymentStatusCompleted)

	if filters.StartDate != nil && filters.EndDate != nil {
		query = query.Where("paid_at BETWEEN ? AND ?", filters.StartDate, filters.EndDate)
	}
	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}

	var payments []models.Payment
	err := query.
		Order("paid_at DESC").
		Preload("Member").
		Find(&payments).Error
	return payments, err
}

// BulkCreate вставляет платежи пачкой; дубликаты по order_id игнорируются
func (r *paymentRepository) BulkCreate(payments []models.Payment) (int64, error) {
	if len(payments) == 0 {
		return 0, nil
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&payments)
	return result.RowsAffected, result.Error
}

func (r *paymentRepository) SumCompletedSince(since time.Time) (int64, error) {
	var total *int64
	err := r.db.Model(&models.Payment{}).
		Select("SUM(amount)").
		Where("status = ? AND paid_at >= ?", models.PaymentStatusCompleted, since).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		// SUM по пустой выборке даёт NULL
		return 0, nil
	}
	return *total, nil
}

func (r *paymentRepository) DailyRevenue(days int) ([]DailyRevenue, error) {
	var rows []DailyRevenue
	err := r.db.Model(&models.Payment{}).
		Select("DATE(paid_at)::text AS date, SUM(amount) AS total, COUNT(id) AS count").
		Where("status = ? AND paid_at >= CURRENT_DATE - ?::int", models.PaymentStatusCompleted, days).
		Group("DATE(paid_at)").
		Order("DATE(paid_at) ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *paymentRepository) PackageSales() ([]PackageSales, error) {
	var rows []PackageSales
	err := r.db.Model(&models.Payment{}).
		Select("package_name, COUNT(id) AS count, SUM(amount) AS total").
		Where("status = ?", models.PaymentStatusCompleted).
		Group("package_name").
		Scan(&rows).Error
	return rows, err
}

func (r *paymentRepository) SourceBreakdown() ([]SourceBreakdown, error) {
	var rows []SourceBreakdown
	err := r.db.Model(&models.Payment{}).
		Select("source, COUNT(id) AS count, SUM(amount) AS total").
		Where("status = ?", models.PaymentStatusCompleted).
		Group("source").
		Scan(&rows).Error
	return rows, err
}
