package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartadmin_backend/internal/models"
	"smartadmin_backend/internal/services/dto"
)

func TestPackageService_Update_FeaturesSerializedAsJSON(t *testing.T) {
	repo := &fakePackageRepo{packages: []models.Package{
		{BaseModel: models.BaseModel{ID: "p-1"}, Name: "Standard", Price: 90000},
	}}
	svc := NewPackageService(repo)

	price := 120000
	pkg, err := svc.Update("p-1", &dto.UpdatePackageRequest{
		Price:    &price,
		Features: []string{"logo", "business card"},
	})
	require.NoError(t, err)
	assert.Equal(t, 120000, pkg.Price)
	assert.JSONEq(t, `["logo","business card"]`, string(pkg.Features))
	// Имя не передавалось и не должно меняться
	assert.Equal(t, "Standard", pkg.Name)
}

func TestPackageService_Update_NotFound(t *testing.T) {
	svc := NewPackageService(&fakePackageRepo{})

	name := "X"
	_, err := svc.Update("missing", &dto.UpdatePackageRequest{Name: &name})
	assert.Error(t, err)
}
