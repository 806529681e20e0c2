package agenda

import (
	"context"
	"testing"
	"time"

	"citamed-service/internal/app/config"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAgendaBackend struct{ mock.Mock }

func (m *mockAgendaBackend) FindAgendaByID(ctx context.Context, agendaID string) (*clinic_dto.Agenda, error) {
	args := m.Called(ctx, agendaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Agenda), args.Error(1)
}

func (m *mockAgendaBackend) FindAgendasByDoctorID(ctx context.Context, doctorID string) ([]clinic_dto.Agenda, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clinic_dto.Agenda), args.Error(1)
}

func (m *mockAgendaBackend) FindAvailableAgendas(ctx context.Context) ([]clinic_dto.Agenda, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clinic_dto.Agenda), args.Error(1)
}

func (m *mockAgendaBackend) CreateAgenda(ctx context.Context, agenda *clinic_dto.Agenda) (*clinic_dto.Agenda, error) {
	args := m.Called(ctx, agenda)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Agenda), args.Error(1)
}

func (m *mockAgendaBackend) UpdateAgenda(ctx context.Context, agenda *clinic_dto.Agenda) (*clinic_dto.Agenda, error) {
	args := m.Called(ctx, agenda)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Agenda), args.Error(1)
}

func (m *mockAgendaBackend) UpdateAgendaAvailability(ctx context.Context, agendaID string, available bool) error {
	args := m.Called(ctx, agendaID, available)
	return args.Error(0)
}

func (m *mockAgendaBackend) DeleteAgenda(ctx context.Context, agendaID string) error {
	args := m.Called(ctx, agendaID)
	return args.Error(0)
}

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

type mockLocker struct{ mock.Mock }

func (m *mockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *mockLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

func newTestAgendaUsecase(agendas *mockAgendaBackend, doctors *mockDoctorBackend, locker *mockLocker) *AgendaUsecase {
	usecase := NewAgendaUsecase(agendas, doctors, locker, &config.InternalConfig{}, zap.NewNop())
	usecase.now = func() time.Time { return time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC) }
	return usecase
}

func grantLock(locker *mockLocker) {
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "token", nil)
	locker.On("Unlock", mock.Anything, mock.Anything, "token").Return(nil)
}

func TestCreateAgenda(t *testing.T) {
	t.Run("Creates when the date is free", func(t *testing.T) {
		agendas := new(mockAgendaBackend)
		doctors := new(mockDoctorBackend)
		locker := new(mockLocker)
		grantLock(locker)

		agendas.On("FindAgendasByDoctorID", mock.Anything, "doc-1").Return([]clinic_dto.Agenda{}, nil)
		agendas.On("CreateAgenda", mock.Anything, mock.Anything).Return(&clinic_dto.Agenda{ID: "ag-1", DoctorID: "doc-1", Date: "2025-03-10"}, nil)

		usecase := newTestAgendaUsecase(agendas, doctors, locker)
		created, err := usecase.CreateAgenda(context.Background(), &requests.CreateAgendaRequest{
			DoctorID:  "doc-1",
			Date:      "2025-03-10",
			StartTime: "09:00",
			EndTime:   "09:30",
		})
		assert.NoError(t, err)
		assert.Equal(t, "ag-1", created.ID)
		agendas.AssertExpectations(t)
	})

	t.Run("Rejects a second agenda on the same date regardless of time", func(t *testing.T) {
		agendas := new(mockAgendaBackend)
		doctors := new(mockDoctorBackend)
		locker := new(mockLocker)
		grantLock(locker)

		agendas.On("FindAgendasByDoctorID", mock.Anything, "doc-1").Return([]clinic_dto.Agenda{
			{ID: "ag-1", DoctorID: "doc-1", Date: "2025-03-10", StartTime: "15:00", EndTime: "16:00"},
		}, nil)

		usecase := newTestAgendaUsecase(agendas, doctors, locker)
		_, err := usecase.CreateAgenda(context.Background(), &requests.CreateAgendaRequest{
			DoctorID:  "doc-1",
			Date:      "2025-03-10",
			StartTime: "09:00",
			EndTime:   "09:30",
		})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
		agendas.AssertNotCalled(t, "CreateAgenda", mock.Anything, mock.Anything)
	})

	t.Run("Keeps the doctor lock until the agenda is persisted", func(t *testing.T) {
		agendas := new(mockAgendaBackend)
		doctors := new(mockDoctorBackend)
		locker := new(mockLocker)

		var calls []string
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "token", nil)
		locker.On("Unlock", mock.Anything, mock.Anything, "token").Run(func(mock.Arguments) {
			calls = append(calls, "unlock")
		}).Return(nil)
		agendas.On("FindAgendasByDoctorID", mock.Anything, "doc-1").Return([]clinic_dto.Agenda{}, nil)
		agendas.On("CreateAgenda", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			calls = append(calls, "create")
		}).Return(&clinic_dto.Agenda{ID: "ag-1", DoctorID: "doc-1", Date: "2025-03-10"}, nil)

		usecase := newTestAgendaUsecase(agendas, doctors, locker)
		_, err := usecase.CreateAgenda(context.Background(), &requests.CreateAgendaRequest{
			DoctorID:  "doc-1",
			Date:      "2025-03-10",
			StartTime: "09:00",
			EndTime:   "09:30",
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"create", "unlock"}, calls)
	})

	t.Run("Fails when the lock is held", func(t *testing.T) {
		agendas := new(mockAgendaBackend)
		doctors := new(mockDoctorBackend)
		locker := new(mockLocker)
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		usecase := newTestAgendaUsecase(agendas, doctors, locker)
		_, err := usecase.CreateAgenda(context.Background(), &requests.CreateAgendaRequest{
			DoctorID:  "doc-1",
			Date:      "2025-03-10",
			StartTime: "09:00",
			EndTime:   "09:30",
		})
		assert.Error(t, err)
		agendas.AssertNotCalled(t, "FindAgendasByDoctorID", mock.Anything, mock.Anything)
	})
}

func TestCreateRecurringAgendas(t *testing.T) {
	t.Run("Persists bookable candidates and reports skips", func(t *testing.T) {
		agendas := new(mockAgendaBackend)
		doctors := new(mockDoctorBackend)
		locker := new(mockLocker)
		grantLock(locker)

		// Monday 2025-01-06 overlaps an existing block, Wednesday is free
		agendas.On("FindAgendasByDoctorID", mock.Anything, "doc-1").Return([]clinic_dto.Agenda{
			{ID: "ag-0", DoctorID: "doc-1", Date: "2025-01-06", StartTime: "09:30", EndTime: "10:30"},
		}, nil)
		agendas.On("CreateAgenda", mock.Anything, mock.MatchedBy(func(slot *clinic_dto.Agenda) bool {
			return slot.Date == "2025-01-08"
		})).Return(&clinic_dto.Agenda{ID: "ag-1", DoctorID: "doc-1", Date: "2025-01-08"}, nil)

		usecase := newTestAgendaUsecase(agendas, doctors, locker)
		outcome, err := usecase.CreateRecurringAgendas(context.Background(), &requests.CreateRecurringAgendaRequest{
			DoctorID:   "doc-1",
			RangeStart: "2025-01-06",
			RangeEnd:   "2025-01-12",
			Weekdays:   []string{"lunes", "miercoles"},
			BlockStart: "09:00",
			BlockEnd:   "10:00",
		})
		assert.NoError(t, err)
		assert.Len(t, outcome.Created, 1)
		assert.Equal(t, 1, outcome.SkippedOverlap)
		assert.Equal(t, 0, outcome.SkippedDuplicate)
		agendas.AssertExpectations(t)
	})

	t.Run("Keeps the doctor lock across the whole persist loop", func(t *testing.T) {
		agendas := new(mockAgendaBackend)
		doctors := new(mockDoctorBackend)
		locker := new(mockLocker)

		var calls []string
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "token", nil)
		locker.On("Unlock", mock.Anything, mock.Anything, "token").Run(func(mock.Arguments) {
			calls = append(calls, "unlock")
		}).Return(nil)
		agendas.On("FindAgendasByDoctorID", mock.Anything, "doc-1").Return([]clinic_dto.Agenda{}, nil)
		agendas.On("CreateAgenda", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			calls = append(calls, "create")
		}).Return(&clinic_dto.Agenda{ID: "ag-1", DoctorID: "doc-1"}, nil)

		usecase := newTestAgendaUsecase(agendas, doctors, locker)
		_, err := usecase.CreateRecurringAgendas(context.Background(), &requests.CreateRecurringAgendaRequest{
			DoctorID:   "doc-1",
			RangeStart: "2025-01-06",
			RangeEnd:   "2025-01-12",
			Weekdays:   []string{"lunes", "miercoles"},
			BlockStart: "09:00",
			BlockEnd:   "10:00",
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"create", "create", "unlock"}, calls)
	})

	t.Run("Backend conflict on create counts as skipped", func(t *testing.T) {
		agendas := new(mockAgendaBackend)
		doctors := new(mockDoctorBackend)
		locker := new(mockLocker)
		grantLock(locker)

		agendas.On("FindAgendasByDoctorID", mock.Anything, "doc-1").Return([]clinic_dto.Agenda{}, nil)
		agendas.On("CreateAgenda", mock.Anything, mock.Anything).Return(nil, exceptions.ErrResourceConflict(nil, "Agenda"))

		usecase := newTestAgendaUsecase(agendas, doctors, locker)
		outcome, err := usecase.CreateRecurringAgendas(context.Background(), &requests.CreateRecurringAgendaRequest{
			DoctorID:   "doc-1",
			RangeStart: "2025-01-06",
			RangeEnd:   "2025-01-06",
			Weekdays:   []string{"lunes"},
			BlockStart: "09:00",
			BlockEnd:   "10:00",
		})
		assert.NoError(t, err)
		assert.Len(t, outcome.Created, 0)
		assert.Equal(t, 1, outcome.SkippedOverlap)
	})
}

func TestFindAvailableAgendas(t *testing.T) {
	agendas := new(mockAgendaBackend)
	doctors := new(mockDoctorBackend)
	locker := new(mockLocker)

	agendas.On("FindAvailableAgendas", mock.Anything).Return([]clinic_dto.Agenda{
		{ID: "ag-1", DoctorID: "doc-1", Available: true},
	}, nil)
	doctors.On("FindAllDoctors", mock.Anything).Return([]clinic_dto.Doctor{
		{ID: "doc-1", Name: "Dra. Ruiz"},
	}, nil)

	usecase := newTestAgendaUsecase(agendas, doctors, locker)
	result, err := usecase.FindAvailableAgendas(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Dra. Ruiz", result[0].DoctorName)
}
