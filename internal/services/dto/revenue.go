package dto

import "smartadmin_backend/internal/models"

// ListRevenueQuery - фильтры выручки (границы дат включительно)
type ListRevenueQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Source    string `form:"source" binding:"omitempty,is-payment-source"`
}

// RevenueSummary - агрегаты по отданной выборке, считаются в памяти
type RevenueSummary struct {
	Total      int `json:"total"`
	TossTotal  int `json:"tossTotal"`
	KmongTotal int `json:"kmongTotal"`
	Count      int `json:"count"`
}

// ListRevenueResponse - платежи плюс сводка
type ListRevenueResponse struct {
	Payments []models.Payment `json:"payments"`
	Summary  RevenueSummary   `json:"summary"`
}

// KmongUploadRow - одна строка выгрузки продаж с Kmong
type KmongUploadRow struct {
	MemberID    string `json:"memberId" binding:"required"`
	PackageName string `json:"packageName" binding:"required"`
	Amount      int    `json:"amount" binding:"min=0"`
	PaidAt      string `json:"paidAt" binding:"required,datetime=2006-01-02"`
}

// KmongUploadRequest - пакетная загрузка продаж
type KmongUploadRequest struct {
	Data []KmongUploadRow `json:"data" binding:"required,min=1,dive"`
}

// KmongUploadResponse - итог загрузки (count - реально созданные строки)
type KmongUploadResponse struct {
	Success bool   `json:"success"`
	Count   int64  `json:"count"`
	Message string `json:"message"`
}
