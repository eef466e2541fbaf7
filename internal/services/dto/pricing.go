package dto

import "smartadmin_backend/internal/models"

// UpdatePackageRequest - редактирование тарифного пакета
type UpdatePackageRequest struct {
	Name      *string  `json:"name,omitempty"`
	Price     *int     `json:"price,omitempty" binding:"omitempty,min=0"`
	Features  []string `json:"features,omitempty"`
	WorkDays  *int     `json:"workDays,omitempty" binding:"omitempty,min=1"`
	Revisions *int     `json:"revisions,omitempty" binding:"omitempty,min=0"`
	Badge     *string  `json:"badge,omitempty"`
}

// ListPackagesResponse - пакеты в порядке отображения
type ListPackagesResponse struct {
	Packages []models.Package `json:"packages"`
}
