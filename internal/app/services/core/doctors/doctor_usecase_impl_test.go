package doctors

import (
	"context"
	"fmt"
	"testing"

	"citamed-service/internal/app/config"
	"citamed-service/internal/pkg/clinic_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockDoctorBackend struct{ mock.Mock }

func (m *mockDoctorBackend) FindDoctorByID(ctx context.Context, doctorID string) (*clinic_dto.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Doctor), args.Error(1)
}

func (m *mockDoctorBackend) FindAllDoctors(ctx context.Context) ([]clinic_dto.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clinic_dto.Doctor), args.Error(1)
}

func (m *mockDoctorBackend) CreateDoctor(ctx context.Context, doctor *clinic_dto.Doctor) (*clinic_dto.Doctor, error) {
	args := m.Called(ctx, doctor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Doctor), args.Error(1)
}

func (m *mockDoctorBackend) UpdateDoctor(ctx context.Context, doctor *clinic_dto.Doctor) (*clinic_dto.Doctor, error) {
	args := m.Called(ctx, doctor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Doctor), args.Error(1)
}

func (m *mockDoctorBackend) DeleteDoctor(ctx context.Context, doctorID string) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

func rosterOf(n int) []clinic_dto.Doctor {
	roster := make([]clinic_dto.Doctor, n)
	for i := range roster {
		roster[i] = clinic_dto.Doctor{ID: fmt.Sprintf("doc-%d", i+1)}
	}
	return roster
}

func TestFindAllDoctors(t *testing.T) {
	cfg := &config.InternalConfig{}
	cfg.App.EndpointPrefix = "/v1"

	t.Run("First page cuts the window and links the next page", func(t *testing.T) {
		backend := new(mockDoctorBackend)
		backend.On("FindAllDoctors", mock.Anything).Return(rosterOf(25), nil)

		usecase := NewDoctorUsecase(backend, cfg, zap.NewNop())
		result, pagination, err := usecase.FindAllDoctors(context.Background(), 1, 10)
		assert.NoError(t, err)
		assert.Len(t, result, 10)
		assert.Equal(t, "doc-1", result[0].ID)
		assert.Equal(t, 25, pagination.Total)
		assert.Equal(t, "/v1/medicos?page=2&page_size=10", pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})

	t.Run("Last page is shorter and has no next link", func(t *testing.T) {
		backend := new(mockDoctorBackend)
		backend.On("FindAllDoctors", mock.Anything).Return(rosterOf(25), nil)

		usecase := NewDoctorUsecase(backend, cfg, zap.NewNop())
		result, pagination, err := usecase.FindAllDoctors(context.Background(), 3, 10)
		assert.NoError(t, err)
		assert.Len(t, result, 5)
		assert.Equal(t, "doc-21", result[0].ID)
		assert.Empty(t, pagination.NextURL)
		assert.Equal(t, "/v1/medicos?page=2&page_size=10", pagination.PrevURL)
	})

	t.Run("Page beyond the roster is empty, not an error", func(t *testing.T) {
		backend := new(mockDoctorBackend)
		backend.On("FindAllDoctors", mock.Anything).Return(rosterOf(3), nil)

		usecase := NewDoctorUsecase(backend, cfg, zap.NewNop())
		result, pagination, err := usecase.FindAllDoctors(context.Background(), 5, 10)
		assert.NoError(t, err)
		assert.Empty(t, result)
		assert.Equal(t, 3, pagination.Total)
	})
}
