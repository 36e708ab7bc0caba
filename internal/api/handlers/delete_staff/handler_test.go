package delete_staff

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/service/staff"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	deleted int64
	err     error
}

func (s *stubService) Delete(_ context.Context, id int64) error {
	s.deleted = id
	return s.err
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/staff/{staffId}", h.Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{name: "deleted", path: "/api/v1/admin/staff/3", status: http.StatusNoContent},
		{name: "bad id", path: "/api/v1/admin/staff/abc", status: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/admin/staff/3", err: staff.ErrStaffNotFound, status: http.StatusNotFound},
		{name: "upcoming bookings", path: "/api/v1/admin/staff/3", err: staff.ErrHasUpcomingBookings, status: http.StatusConflict},
		{name: "internal", path: "/api/v1/admin/staff/3", err: staff.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := serve(NewHandler(svc, nopLogger{}), tt.path)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusBadRequest {
				assert.Equal(t, int64(3), svc.deleted)
			}
		})
	}
}
