package repositories

import (
	"gorm.io/gorm"

	"smartadmin_backend/internal/models"
)

type PackageRepository interface {
	FindAllOrdered() ([]models.Package, error)
	FindByID(id string) (*models.Package, error)
	Update(pkg *models.Package) error
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

// FindAllOrdered возвращает пакеты в порядке отображения
func (r *packageRepository) FindAllOrdered() ([]models.Package, error) {
	var packages []models.Package
	err := r.db.Order("display_order ASC").Find(&packages).Error
	return packages, err
}

func (r *packageRepository) FindByID(id string) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.First(&pkg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) Update(pkg *models.Package) error {
	return r.db.Save(pkg).Error
}
