package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"smartadmin_backend/internal/models"
	"smartadmin_backend/internal/repositories"
	"smartadmin_backend/internal/services/dto"
	"smartadmin_backend/pkg/apperrors"
)

type ReviewService interface {
	List() (*dto.ListReviewsResponse, error)
	Reply(id string, req *dto.ReplyReviewRequest) (*models.Review, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) List() (*dto.ListReviewsResponse, error) {
	reviews, err := s.reviewRepo.FindAll()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.ListReviewsResponse{Reviews: reviews}, nil
}

// Reply сохраняет ответ менеджера и фиксирует момент ответа
func (s *reviewService) Reply(id string, req *dto.ReplyReviewRequest) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	now := time.Now()
	review.AdminReply = req.AdminReply
	review.RepliedAt = &now

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return review, nil
}
