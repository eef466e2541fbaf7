package services

import (
	"fmt"
	"math/rand"
	"time"

	chatmodels "smartadmin_backend/internal/models/chat"
	"smartadmin_backend/internal/repositories"
	chatrepo "smartadmin_backend/internal/repositories/chat"
	"smartadmin_backend/internal/services/dto"
	"smartadmin_backend/pkg/apperrors"
)

type DashboardService interface {
	Stats() (*dto.DashboardStats, error)
	DailySignups() ([]dto.DailySignupPoint, error)
	DailyRevenue() ([]dto.DailyRevenuePoint, error)
	PackageSales() ([]dto.PackageSalesPoint, error)
	RevenueSource() ([]dto.RevenueSourcePoint, error)
}

type dashboardService struct {
	memberRepo  repositories.MemberRepository
	paymentRepo repositories.PaymentRepository
	reviewRepo  repositories.ReviewRepository
	messageRepo chatrepo.MessageRepository
}

func NewDashboardService(
	memberRepo repositories.MemberRepository,
	paymentRepo repositories.PaymentRepository,
	reviewRepo repositories.ReviewRepository,
	messageRepo chatrepo.MessageRepository,
) DashboardService {
	return &dashboardService{
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
		reviewRepo:  reviewRepo,
		messageRepo: messageRepo,
	}
}

// Stats собирает сводку из независимых read-only запросов.
// Счётчика посетителей пока нет, отдаём заглушку 50..149.
func (s *dashboardService) Stats() (*dto.DashboardStats, error) {
	totalMembers, err := s.memberRepo.CountActive()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthlyRevenue, err := s.paymentRepo.SumCompletedSince(monthStart)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	avg, err := s.reviewRepo.AverageVisibleRating()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	avgRating := "0.0"
	if avg > 0 {
		avgRating = fmt.Sprintf("%.1f", avg)
	}

	unanswered, err := s.messageRepo.CountUnreadRooms(chatmodels.SenderUser)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.DashboardStats{
		TodayVisitors:   50 + rand.Intn(100),
		TotalMembers:    totalMembers,
		MonthlyRevenue:  monthlyRevenue,
		AvgRating:       avgRating,
		UnansweredChats: unanswered,
	}, nil
}

func (s *dashboardService) DailySignups() ([]dto.DailySignupPoint, error) {
	rows, err := s.memberRepo.DailySignups(15)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	points := make([]dto.DailySignupPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, dto.DailySignupPoint{Date: row.Date, Count: row.Count})
	}
	return points, nil
}

func (s *dashboardService) DailyRevenue() ([]dto.DailyRevenuePoint, error) {
	rows, err := s.paymentRepo.DailyRevenue(15)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	points := make([]dto.DailyRevenuePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, dto.DailyRevenuePoint{Date: row.Date, Total: row.Total, Count: row.Count})
	}
	return points, nil
}

func (s *dashboardService) PackageSales() ([]dto.PackageSalesPoint, error) {
	rows, err := s.paymentRepo.PackageSales()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	points := make([]dto.PackageSalesPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, dto.PackageSalesPoint{PackageName: row.PackageName, Count: row.Count, Total: row.Total})
	}
	return points, nil
}

func (s *dashboardService) RevenueSource() ([]dto.RevenueSourcePoint, error) {
	rows, err := s.paymentRepo.SourceBreakdown()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	points := make([]dto.RevenueSourcePoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, dto.RevenueSourcePoint{Source: row.Source, Count: row.Count, Total: row.Total})
	}
	return points, nil
}
