package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"smartadmin_backend/internal/models"
	"smartadmin_backend/internal/repositories"
	"smartadmin_backend/internal/services/dto"
	"smartadmin_backend/pkg/apperrors"
)

type PackageService interface {
	List() (*dto.ListPackagesResponse, error)
	Update(id string, req *dto.UpdatePackageRequest) (*models.Package, error)
}

type packageService struct {
	packageRepo repositories.PackageRepository
}

func NewPackageService(packageRepo repositories.PackageRepository) PackageService {
	return &packageService{packageRepo: packageRepo}
}

func (s *packageService) List() (*dto.ListPackagesResponse, error) {
	packages, err := s.packageRepo.FindAllOrdered()
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return &dto.ListPackagesResponse{Packages: packages}, nil
}

func (s *packageService) Update(id string, req *dto.UpdatePackageRequest) (*models.Package, error) {
	pkg, err := s.packageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPackageNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Price != nil {
		pkg.Price = *req.Price
	}
	if req.Features != nil {
		raw, err := json.Marshal(req.Features)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		pkg.Features = raw
	}
	if req.WorkDays != nil {
		pkg.WorkDays = *req.WorkDays
	}
	if req.Revisions != nil {
		pkg.Revisions = *req.Revisions
	}
	if req.Badge != nil {
		pkg.Badge = *req.Badge
	}

	if err := s.packageRepo.Update(pkg); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return pkg, nil
}
