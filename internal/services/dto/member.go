package dto

import "smartadmin_backend/internal/models"

// ListMembersQuery - фильтры списка участников
type ListMembersQuery struct {
	Search string `form:"search"`
	Grade  string `form:"grade" binding:"omitempty,is-member-grade"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// UpdateMemberRequest - редактирование карточки участника
type UpdateMemberRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Grade   *string `json:"grade,omitempty" binding:"omitempty,is-member-grade"`
	KakaoID *string `json:"kakaoId,omitempty"`
	Memo    *string `json:"memo,omitempty"`
}

// SendMemberMessageRequest - рассылка сообщения выбранным участникам
type SendMemberMessageRequest struct {
	MemberIDs []string `json:"memberIds" binding:"required,min=1"`
	Message   string   `json:"message" binding:"required"`
}

// Pagination - блок пагинации в списочных ответах
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// ListMembersResponse - страница участников
type ListMembersResponse struct {
	Members    []models.Member `json:"members"`
	Pagination Pagination      `json:"pagination"`
}

// SendMemberMessageResponse - итог рассылки
type SendMemberMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
