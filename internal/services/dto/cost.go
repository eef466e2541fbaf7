package dto

import "smartadmin_backend/internal/models"

// ListCostsQuery - фильтр расходов по диапазону дат (включительно)
type ListCostsQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// CreateCostRequest - новая статья расходов
type CreateCostRequest struct {
	Category    string `json:"category" binding:"required,is-cost-category"`
	Amount      int    `json:"amount" binding:"min=0"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	IsRecurring bool   `json:"isRecurring"`
}

// ListCostsResponse - расходы плюс общая сумма выборки
type ListCostsResponse struct {
	Costs []models.Cost `json:"costs"`
	Total int           `json:"total"`
}
