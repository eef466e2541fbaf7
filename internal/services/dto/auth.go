package dto

import "smartadmin_backend/internal/models"

// LoginRequest - запрос входа администратора
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// InitAdminRequest - создание первого администратора
type InitAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// AdminDTO - публичная информация об администраторе (без хеша пароля)
type AdminDTO struct {
	ID    string           `json:"id"`
	Email string           `json:"email"`
	Name  string           `json:"name"`
	Role  models.AdminRole `json:"role"`
}

// LoginResponse - ответ с токеном
type LoginResponse struct {
	Token string   `json:"token"`
	Admin AdminDTO `json:"admin"`
}

func NewAdminDTO(admin *models.Admin) AdminDTO {
	return AdminDTO{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
		Role:  admin.Role,
	}
}
