package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"smartadmin_backend/internal/email"
	"smartadmin_backend/internal/logger"
	"smartadmin_backend/internal/models"
	"smartadmin_backend/internal/repositories"
	"smartadmin_backend/internal/services/dto"
	"smartadmin_backend/pkg/apperrors"
)

type MemberService interface {
	List(query *dto.ListMembersQuery) (*dto.ListMembersResponse, error)
	Get(id string) (*models.Member, error)
	Update(id string, req *dto.UpdateMemberRequest) (*models.Member, error)
	SendMessage(req *dto.SendMemberMessageRequest) (*dto.SendMemberMessageResponse, error)
}

type memberService struct {
	memberRepo repositories.MemberRepository
	notifier   email.Notifier
}

func NewMemberService(memberRepo repositories.MemberRepository, notifier email.Notifier) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		notifier:   notifier,
	}
}

func (s *memberService) List(query *dto.ListMembersQuery) (*dto.ListMembersResponse, error) {
	filters := repositories.MemberFilters{
		Search: query.Search,
		Grade:  models.MemberGrade(query.Grade),
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 20
	}

	members, total, err := s.memberRepo.FindWithFilters(filters)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	pages := int(total) / filters.Limit
	if int(total)%filters.Limit != 0 {
		pages++
	}

	return &dto.ListMembersResponse{
		Members: members,
		Pagination: dto.Pagination{
			Total: total,
			Page:  filters.Page,
			Pages: pages,
		},
	}, nil
}

func (s *memberService) Get(id string) (*models.Member, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	return member, nil
}

func (s *memberService) Update(id string, req *dto.UpdateMemberRequest) (*models.Member, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Grade != nil {
		member.Grade = models.MemberGrade(*req.Grade)
	}
	if req.KakaoID != nil {
		member.KakaoID = *req.KakaoID
	}
	if req.Memo != nil {
		member.Memo = *req.Memo
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return member, nil
}

// SendMessage рассылает текст выбранным участникам на email.
// Ошибка доставки одному адресату не прерывает рассылку остальным.
func (s *memberService) SendMessage(req *dto.SendMemberMessageRequest) (*dto.SendMemberMessageResponse, error) {
	members, err := s.memberRepo.FindByIDs(req.MemberIDs)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if len(members) == 0 {
		return nil, apperrors.ErrMemberNotFound
	}

	sent := 0
	for _, member := range members {
		if member.Email == "" {
			continue
		}
		if err := s.notifier.Send(member.Email, "Notification", req.Message); err != nil {
			logger.WithError(err).Warn("failed to send member message", "member_id", member.ID)
			continue
		}
		sent++
	}

	return &dto.SendMemberMessageResponse{
		Success: true,
		Message: fmt.Sprintf("Message sent to %d member(s)", sent),
	}, nil
}
