package services

import (
	"fmt"
	"time"

	"smartadmin_backend/internal/models"
	"smartadmin_backend/internal/repositories"
	"smartadmin_backend/internal/services/dto"
	"smartadmin_backend/pkg/apperrors"
)

type RevenueService interface {
	List(query *dto.ListRevenueQuery) (*dto.ListRevenueResponse, error)
	KmongUpload(req *dto.KmongUploadRequest) (*dto.KmongUploadResponse, error)
}

type revenueService struct {
	paymentRepo repositories.PaymentRepository
}

func NewRevenueService(paymentRepo repositories.PaymentRepository) RevenueService {
	return &revenueService{paymentRepo: paymentRepo}
}

// List отдаёт завершённые платежи за период со сводкой,
// агрегаты считаются в памяти по отданной выборке.
func (s *revenueService) List(query *dto.ListRevenueQuery) (*dto.ListRevenueResponse, error) {
	filters := repositories.PaymentFilters{
		Source: models.PaymentSource(query.Source),
	}

	if query.StartDate != "" {
		start, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, apperrors.ValidationError("Invalid startDate format")
		}
		filters.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, apperrors.ValidationError("Invalid endDate format")
		}
		// Конец диапазона включительно: сдвигаем на конец суток
		end = end.Add(24*time.Hour - time.Nanosecond)
		filters.EndDate = &end
	}

	payments, err := s.paymentRepo.FindCompleted(filters)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	summary := dto.RevenueSummary{Count: len(payments)}
	for _, p := range payments {
		summary.Total += p.Amount
		switch p.Source {
		case models.PaymentSourceToss:
			summary.TossTotal += p.Amount
		case models.PaymentSourceKmong:
			summary.KmongTotal += p.Amount
		}
	}

	return &dto.ListRevenueResponse{
		Payments: payments,
		Summary:  summary,
	}, nil
}

// KmongUpload создаёт платежи из выгрузки Kmong единым батчем.
// Дубликаты по order_id молча пропускаются, поэтому count
// может быть меньше числа строк во входе.
func (s *revenueService) KmongUpload(req *dto.KmongUploadRequest) (*dto.KmongUploadResponse, error) {
	payments := make([]models.Payment, 0, len(req.Data))
	for _, row := range req.Data {
		paidAt, err := time.Parse("2006-01-02", row.PaidAt)
		if err != nil {
			return nil, apperrors.ValidationError("Invalid paidAt format")
		}

		payments = append(payments, models.Payment{
			MemberID:    row.MemberID,
			PackageName: row.PackageName,
			Amount:      row.Amount,
			Source:      models.PaymentSourceKmong,
			Status:      models.PaymentStatusCompleted,
			// Пакет входит в ключ, иначе две покупки разных пакетов
			// в один день схлопнутся при игнорировании дубликатов
			OrderID:     fmt.Sprintf("KMONG-%s-%s-%s", row.MemberID, row.PackageName, row.PaidAt),
			PaidAt:      &paidAt,
		})
	}

	created, err := s.paymentRepo.BulkCreate(payments)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.KmongUploadResponse{
		Success: true,
		Count:   created,
		Message: fmt.Sprintf("%d payment(s) imported", created),
	}, nil
}
