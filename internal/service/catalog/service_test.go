package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	services []*domain.Service
	err      error
}

func (f fakeRepo) List(context.Context) ([]*domain.Service, error) {
	return f.services, f.err
}

func TestService_List(t *testing.T) {
	svc := NewService(fakeRepo{services: []*domain.Service{
		{ID: 2, Name: "Beard trim", DurationMinutes: 15},
		{ID: 1, Name: "Haircut", DurationMinutes: 30},
	}}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Beard trim", resp.Services[0].Name)
	assert.Equal(t, 30, resp.Services[1].DurationMinutes)
}

func TestService_ListEmptyAndFailure(t *testing.T) {
	resp, err := NewService(fakeRepo{}, nopLogger{}).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Services)
	assert.Empty(t, resp.Services)

	_, err = NewService(fakeRepo{err: errors.New("timeout")}, nopLogger{}).List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
