package dto

import "smartadmin_backend/internal/models"

// ReplyReviewRequest - ответ менеджера на отзыв
type ReplyReviewRequest struct {
	AdminReply string `json:"adminReply" binding:"required"`
}

// ListReviewsResponse - все отзывы с данными участников
type ListReviewsResponse struct {
	Reviews []models.Review `json:"reviews"`
}
