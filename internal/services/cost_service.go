package services

import (
	"time"

	"smartadmin_backend/internal/models"
	"smartadmin_backend/internal/repositories"
	"smartadmin_backend/internal/services/dto"
	"smartadmin_backend/pkg/apperrors"
)

type CostService interface {
	List(query *dto.ListCostsQuery) (*dto.ListCostsResponse, error)
	Create(req *dto.CreateCostRequest) (*models.Cost, error)
}

type costService struct {
	costRepo repositories.CostRepository
}

func NewCostService(costRepo repositories.CostRepository) CostService {
	return &costService{costRepo: costRepo}
}

// List отдаёт расходы за период; total считается по выборке в памяти
func (s *costService) List(query *dto.ListCostsQuery) (*dto.ListCostsResponse, error) {
	var start, end *time.Time

	if query.StartDate != "" {
		t, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, apperrors.ValidationError("Invalid startDate format")
		}
		start = &t
	}
	if query.EndDate != "" {
		t, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, apperrors.ValidationError("Invalid endDate format")
		}
		end = &t
	}

	costs, err := s.costRepo.FindInRange(start, end)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	total := 0
	for _, c := range costs {
		total += c.Amount
	}

	return &dto.ListCostsResponse{Costs: costs, Total: total}, nil
}

func (s *costService) Create(req *dto.CreateCostRequest) (*models.Cost, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.ValidationError("Invalid date format")
	}

	cost := &models.Cost{
		Category:    models.CostCategory(req.Category),
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		IsRecurring: req.IsRecurring,
	}
	if err := s.costRepo.Create(cost); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return cost, nil
}
