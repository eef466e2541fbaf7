package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartadmin_backend/internal/services/dto"
	"smartadmin_backend/internal/validator"
)

type fakeRevenueService struct {
	uploaded *dto.KmongUploadRequest
}

func (f *fakeRevenueService) List(query *dto.ListRevenueQuery) (*dto.ListRevenueResponse, error) {
	return &dto.ListRevenueResponse{}, nil
}

func (f *fakeRevenueService) KmongUpload(req *dto.KmongUploadRequest) (*dto.KmongUploadResponse, error) {
	f.uploaded = req
	return &dto.KmongUploadResponse{Success: true, Count: int64(len(req.Data))}, nil
}

func newRevenueTestRouter(svc *fakeRevenueService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.RegisterGinBindings()
	router := gin.New()
	handler := NewRevenueHandler(NewBaseHandler(validator.New()), svc)
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	return router
}

// Строка выгрузки с нулевой суммой проходит валидацию
func TestRevenueHandler_KmongUpload_ZeroAmountRow(t *testing.T) {
	svc := &fakeRevenueService{}
	router := newRevenueTestRouter(svc)

	body := `{"data":[{"memberId":"m-1","packageName":"Basic","amount":0,"paidAt":"2026-08-01"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/revenue/kmong-upload", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.uploaded)
	require.Len(t, svc.uploaded.Data, 1)
	assert.Equal(t, 0, svc.uploaded.Data[0].Amount)
}
