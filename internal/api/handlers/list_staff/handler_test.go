package list_staff

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/staff/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct{ err error }

func (s stubService) List(context.Context) (*models.StaffListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.StaffListResponse{Staff: []models.StaffResponse{{ID: 1, Name: "Anna"}}}, nil
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(stubService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/staff", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"staff":[{"id":1,"name":"Anna"}]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(stubService{err: errors.New("db down")}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/staff", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
