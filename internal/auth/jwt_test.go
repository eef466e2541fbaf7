package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartadmin_backend/internal/models"
)

func TestJWTManager_GenerateAndVerify(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	admin := &models.Admin{
		BaseModel: models.BaseModel{ID: "admin-1"},
		Email:     "a@b.com",
		Name:      "Admin",
		Role:      models.AdminRoleSuper,
	}

	token, err := manager.Generate(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.AdminRoleSuper, claims.Role)
}

func TestJWTManager_Verify_WrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-a", time.Hour)
	other := NewJWTManager("secret-b", time.Hour)

	token, err := manager.Generate(&models.Admin{BaseModel: models.BaseModel{ID: "x"}})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTManager_Verify_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(&models.Admin{BaseModel: models.BaseModel{ID: "x"}})
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestJWTManager_Expiry(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.Generate(&models.Admin{BaseModel: models.BaseModel{ID: "x"}})
	require.NoError(t, err)

	expiry, err := manager.Expiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)
}

func TestExtractTokenFromHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, err := ExtractTokenFromHeader(r)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	r.Header.Set("Authorization", "abc.def.ghi")
	_, err = ExtractTokenFromHeader(r)
	assert.Error(t, err)
}
