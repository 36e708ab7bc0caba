package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

const validBody = `{"serviceId":1,"staffId":2,"start":"2025-03-10T10:00","customerName":"Anna","customerPhone":"+7 900 123-45-67"}`

func TestHandler_Created(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:            9,
		ServiceID:     1,
		ServiceName:   "Haircut",
		StaffID:       2,
		StaffName:     "Olga",
		CustomerName:  "Anna",
		CustomerPhone: "+7 900 123-45-67",
		Start:         start,
		End:           start.Add(30 * time.Minute),
		CreatedAt:     start.Add(-5 * time.Hour),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, start, uc.got.Start)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body.ID)
	assert.Equal(t, "2025-03-10T10:00:00", body.Start)
	assert.Equal(t, "2025-03-10T10:30:00", body.End)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "conflict", err: createBooking.ErrSlotNotAvailable, status: http.StatusConflict},
		{name: "service not found", err: createBooking.ErrServiceNotFound, status: http.StatusNotFound},
		{name: "staff not found", err: createBooking.ErrStaffNotFound, status: http.StatusNotFound},
		{name: "missing fields", err: createBooking.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "off grid", err: createBooking.ErrNotOnGrid, status: http.StatusBadRequest},
		{name: "bad name", err: createBooking.ErrInvalidName, status: http.StatusBadRequest},
		{name: "bad phone", err: createBooking.ErrInvalidPhone, status: http.StatusBadRequest},
		{name: "too late", err: createBooking.ErrTooLate, status: http.StatusUnprocessableEntity},
		{name: "day off", err: createBooking.ErrStaffNotWorking, status: http.StatusUnprocessableEntity},
		{name: "outside hours", err: createBooking.ErrOutsideWorkingHours, status: http.StatusUnprocessableEntity},
		{name: "wrapped conflict", err: fmt.Errorf("create_booking: %w", createBooking.ErrSlotNotAvailable), status: http.StatusConflict},
		{name: "internal", err: createBooking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody)))

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
		})
	}
}

func TestHandler_BadRequestBeforeUseCase(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "unknown field", body: `{"serviceId":1,"room":3}`},
		{name: "bad start", body: `{"serviceId":1,"staffId":2,"start":"10/03/2025 10:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			h := NewHandler(uc, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandler_MissingStartReportsMissingFields(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings",
		strings.NewReader(`{"serviceId":1,"staffId":2,"customerName":"Anna","customerPhone":"+7 900 123-45-67"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgMissingFields, body.Message)
	assert.Nil(t, uc.got)
}
