package booking

import (
	"context"
	"errors"
	"testing"

	"citamed-service/internal/app/config"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAppointmentBackend struct{ mock.Mock }

func (m *mockAppointmentBackend) FindAppointmentByID(ctx context.Context, appointmentID string) (*clinic_dto.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Appointment), args.Error(1)
}

func (m *mockAppointmentBackend) FindAppointmentsByStatus(ctx context.Context, status clinic_dto.AppointmentStatus) ([]clinic_dto.Appointment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clinic_dto.Appointment), args.Error(1)
}

func (m *mockAppointmentBackend) FindAppointmentsByPatientID(ctx context.Context, patientID string) ([]clinic_dto.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clinic_dto.Appointment), args.Error(1)
}

func (m *mockAppointmentBackend) CreateAppointment(ctx context.Context, appointment *clinic_dto.Appointment) (*clinic_dto.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Appointment), args.Error(1)
}

func (m *mockAppointmentBackend) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status clinic_dto.AppointmentStatus) error {
	args := m.Called(ctx, appointmentID, status)
	return args.Error(0)
}

func (m *mockAppointmentBackend) DeleteAppointment(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

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

type mockPatientBackend struct{ mock.Mock }

func (m *mockPatientBackend) FindPatientByID(ctx context.Context, patientID string) (*clinic_dto.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Patient), args.Error(1)
}

func (m *mockPatientBackend) FindPatientByUID(ctx context.Context, uid string) (*clinic_dto.Patient, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Patient), args.Error(1)
}

func (m *mockPatientBackend) FindAllPatients(ctx context.Context) ([]clinic_dto.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clinic_dto.Patient), args.Error(1)
}

func (m *mockPatientBackend) CreatePatient(ctx context.Context, patient *clinic_dto.Patient) (*clinic_dto.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Patient), args.Error(1)
}

func (m *mockPatientBackend) UpdatePatient(ctx context.Context, patient *clinic_dto.Patient) (*clinic_dto.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Patient), args.Error(1)
}

func (m *mockPatientBackend) DeletePatient(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
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

type mockAdminBackend struct{ mock.Mock }

func (m *mockAdminBackend) FindAdministratorByID(ctx context.Context, adminID string) (*clinic_dto.Administrator, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Administrator), args.Error(1)
}

func (m *mockAdminBackend) FindAllAdministrators(ctx context.Context) ([]clinic_dto.Administrator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]clinic_dto.Administrator), args.Error(1)
}

func (m *mockAdminBackend) CreateAdministrator(ctx context.Context, admin *clinic_dto.Administrator) (*clinic_dto.Administrator, error) {
	args := m.Called(ctx, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Administrator), args.Error(1)
}

func (m *mockAdminBackend) UpdateAdministrator(ctx context.Context, admin *clinic_dto.Administrator) (*clinic_dto.Administrator, error) {
	args := m.Called(ctx, admin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clinic_dto.Administrator), args.Error(1)
}

func (m *mockAdminBackend) DeleteAdministrator(ctx context.Context, adminID string) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type mockWhatsApp struct{ mock.Mock }

func (m *mockWhatsApp) SendMessage(ctx context.Context, message *requests.WhatsAppMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type bookingFixture struct {
	appointments *mockAppointmentBackend
	agendas      *mockAgendaBackend
	patients     *mockPatientBackend
	doctors      *mockDoctorBackend
	admins       *mockAdminBackend
	mailer       *mockMailer
	whatsapp     *mockWhatsApp
	usecase      *BookingUsecase
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		appointments: new(mockAppointmentBackend),
		agendas:      new(mockAgendaBackend),
		patients:     new(mockPatientBackend),
		doctors:      new(mockDoctorBackend),
		admins:       new(mockAdminBackend),
		mailer:       new(mockMailer),
		whatsapp:     new(mockWhatsApp),
	}
	f.usecase = NewBookingUsecase(
		f.appointments, f.agendas, f.patients, f.doctors, f.admins,
		f.mailer, f.whatsapp,
		&config.InternalConfig{}, zap.NewNop(),
	)
	return f
}

func TestRequestAppointment(t *testing.T) {
	t.Run("Short reason fails without touching the backend", func(t *testing.T) {
		f := newBookingFixture()
		_, err := f.usecase.RequestAppointment(context.Background(), "pat-1", &requests.CreateAppointmentRequest{
			AgendaID: "ag-1",
			Reason:   "too short",
		})
		assert.Error(t, err)
		f.agendas.AssertNotCalled(t, "FindAgendaByID", mock.Anything, mock.Anything)
	})

	t.Run("Reason length counts characters, not bytes", func(t *testing.T) {
		f := newBookingFixture()
		// 9 characters but 12 bytes, so a byte count would let it through
		_, err := f.usecase.RequestAppointment(context.Background(), "pat-1", &requests.CreateAppointmentRequest{
			AgendaID: "ag-1",
			Reason:   "añoañoaño",
		})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		f.agendas.AssertNotCalled(t, "FindAgendaByID", mock.Anything, mock.Anything)
		f.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Unavailable slot fails and creates nothing", func(t *testing.T) {
		f := newBookingFixture()
		f.agendas.On("FindAgendaByID", mock.Anything, "ag-1").Return(&clinic_dto.Agenda{
			ID: "ag-1", DoctorID: "doc-1", Available: false,
		}, nil)

		_, err := f.usecase.RequestAppointment(context.Background(), "pat-1", &requests.CreateAppointmentRequest{
			AgendaID: "ag-1",
			Reason:   "Routine checkup visit",
		})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
		f.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("Backend conflict maps to slot unavailable", func(t *testing.T) {
		f := newBookingFixture()
		f.agendas.On("FindAgendaByID", mock.Anything, "ag-1").Return(&clinic_dto.Agenda{
			ID: "ag-1", DoctorID: "doc-1", Available: true,
		}, nil)
		f.appointments.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrResourceConflict(nil, "Appointment"))

		_, err := f.usecase.RequestAppointment(context.Background(), "pat-1", &requests.CreateAppointmentRequest{
			AgendaID: "ag-1",
			Reason:   "Routine checkup visit",
		})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("Creates pending and notifies patient and every admin", func(t *testing.T) {
		f := newBookingFixture()
		f.agendas.On("FindAgendaByID", mock.Anything, "ag-1").Return(&clinic_dto.Agenda{
			ID: "ag-1", DoctorID: "doc-1", Date: "2025-03-10", StartTime: "09:00", EndTime: "09:30", Available: true,
		}, nil)
		f.appointments.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(appointment *clinic_dto.Appointment) bool {
			return appointment.Status == clinic_dto.AppointmentStatusPending &&
				appointment.AgendaID == "ag-1" &&
				appointment.Date == "2025-03-10"
		})).Return(&clinic_dto.Appointment{
			ID: "cita-1", PatientID: "pat-1", DoctorID: "doc-1", AgendaID: "ag-1",
			Status: clinic_dto.AppointmentStatusPending, Date: "2025-03-10", StartTime: "09:00",
		}, nil)
		f.patients.On("FindPatientByID", mock.Anything, "pat-1").Return(&clinic_dto.Patient{
			ID: "pat-1", Name: "Ana", Email: "ana@example.com", Phone: "600111222",
		}, nil)
		f.admins.On("FindAllAdministrators", mock.Anything).Return([]clinic_dto.Administrator{
			{ID: "adm-1", Email: "admin1@example.com"},
			{ID: "adm-2", Email: "admin2@example.com"},
		}, nil)
		f.mailer.On("SendEmail", mock.Anything, mock.Anything).Return(nil)
		f.whatsapp.On("SendMessage", mock.Anything, mock.Anything).Return(nil)

		created, err := f.usecase.RequestAppointment(context.Background(), "pat-1", &requests.CreateAppointmentRequest{
			AgendaID: "ag-1",
			Reason:   "Routine checkup visit",
		})
		assert.NoError(t, err)
		assert.Equal(t, clinic_dto.AppointmentStatusPending, created.Status)
		// one email to the patient, one per administrator
		f.mailer.AssertNumberOfCalls(t, "SendEmail", 3)
		f.whatsapp.AssertNumberOfCalls(t, "SendMessage", 1)
	})

	t.Run("Notification failure does not fail the booking", func(t *testing.T) {
		f := newBookingFixture()
		f.agendas.On("FindAgendaByID", mock.Anything, "ag-1").Return(&clinic_dto.Agenda{
			ID: "ag-1", DoctorID: "doc-1", Available: true,
		}, nil)
		f.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return(&clinic_dto.Appointment{
			ID: "cita-1", PatientID: "pat-1", Status: clinic_dto.AppointmentStatusPending,
		}, nil)
		f.patients.On("FindPatientByID", mock.Anything, "pat-1").Return(nil, exceptions.ErrResourceNotFound(nil, "Patient"))

		created, err := f.usecase.RequestAppointment(context.Background(), "pat-1", &requests.CreateAppointmentRequest{
			AgendaID: "ag-1",
			Reason:   "Routine checkup visit",
		})
		assert.NoError(t, err)
		assert.Equal(t, "cita-1", created.ID)
	})
}

func TestConfirmAppointment(t *testing.T) {
	t.Run("Status then availability", func(t *testing.T) {
		f := newBookingFixture()
		f.appointments.On("FindAppointmentByID", mock.Anything, "cita-1").Return(&clinic_dto.Appointment{
			ID: "cita-1", AgendaID: "ag-1", Status: clinic_dto.AppointmentStatusPending,
		}, nil)
		f.appointments.On("UpdateAppointmentStatus", mock.Anything, "cita-1", clinic_dto.AppointmentStatusConfirmed).Return(nil)
		f.agendas.On("UpdateAgendaAvailability", mock.Anything, "ag-1", false).Return(nil)

		confirmed, err := f.usecase.ConfirmAppointment(context.Background(), "cita-1")
		assert.NoError(t, err)
		assert.Equal(t, clinic_dto.AppointmentStatusConfirmed, confirmed.Status)
		f.agendas.AssertExpectations(t)
	})

	t.Run("Rejected appointment cannot be confirmed", func(t *testing.T) {
		f := newBookingFixture()
		f.appointments.On("FindAppointmentByID", mock.Anything, "cita-1").Return(&clinic_dto.Appointment{
			ID: "cita-1", AgendaID: "ag-1", Status: clinic_dto.AppointmentStatusRejected,
		}, nil)

		_, err := f.usecase.ConfirmAppointment(context.Background(), "cita-1")
		assert.Error(t, err)
		f.appointments.AssertNotCalled(t, "UpdateAppointmentStatus", mock.Anything, mock.Anything, mock.Anything)
		f.agendas.AssertNotCalled(t, "UpdateAgendaAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Availability failure is compensated", func(t *testing.T) {
		f := newBookingFixture()
		f.appointments.On("FindAppointmentByID", mock.Anything, "cita-1").Return(&clinic_dto.Appointment{
			ID: "cita-1", AgendaID: "ag-1", Status: clinic_dto.AppointmentStatusPending,
		}, nil)
		f.appointments.On("UpdateAppointmentStatus", mock.Anything, "cita-1", clinic_dto.AppointmentStatusConfirmed).Return(nil)
		f.agendas.On("UpdateAgendaAvailability", mock.Anything, "ag-1", false).Return(errors.New("backend down"))
		f.appointments.On("UpdateAppointmentStatus", mock.Anything, "cita-1", clinic_dto.AppointmentStatusPending).Return(nil)

		_, err := f.usecase.ConfirmAppointment(context.Background(), "cita-1")
		assert.Error(t, err)
		f.appointments.AssertCalled(t, "UpdateAppointmentStatus", mock.Anything, "cita-1", clinic_dto.AppointmentStatusPending)
	})

	t.Run("Failed compensation surfaces a partial update error", func(t *testing.T) {
		f := newBookingFixture()
		f.appointments.On("FindAppointmentByID", mock.Anything, "cita-1").Return(&clinic_dto.Appointment{
			ID: "cita-1", AgendaID: "ag-1", Status: clinic_dto.AppointmentStatusPending,
		}, nil)
		f.appointments.On("UpdateAppointmentStatus", mock.Anything, "cita-1", clinic_dto.AppointmentStatusConfirmed).Return(nil)
		f.agendas.On("UpdateAgendaAvailability", mock.Anything, "ag-1", false).Return(errors.New("backend down"))
		f.appointments.On("UpdateAppointmentStatus", mock.Anything, "cita-1", clinic_dto.AppointmentStatusPending).Return(errors.New("still down"))

		_, err := f.usecase.ConfirmAppointment(context.Background(), "cita-1")
		assert.Error(t, err)

		var partial *exceptions.PartialUpdateError
		assert.True(t, errors.As(err, &partial))
		assert.Equal(t, "cita-1", partial.AppointmentID)
		assert.Equal(t, "ag-1", partial.AgendaID)
		assert.True(t, partial.StatusUpdated)
	})
}

func TestRejectAppointment(t *testing.T) {
	f := newBookingFixture()
	f.appointments.On("FindAppointmentByID", mock.Anything, "cita-1").Return(&clinic_dto.Appointment{
		ID: "cita-1", AgendaID: "ag-1", Status: clinic_dto.AppointmentStatusPending,
	}, nil)
	f.appointments.On("UpdateAppointmentStatus", mock.Anything, "cita-1", clinic_dto.AppointmentStatusRejected).Return(nil)
	f.agendas.On("UpdateAgendaAvailability", mock.Anything, "ag-1", true).Return(nil)

	rejected, err := f.usecase.RejectAppointment(context.Background(), "cita-1")
	assert.NoError(t, err)
	assert.Equal(t, clinic_dto.AppointmentStatusRejected, rejected.Status)
	f.agendas.AssertExpectations(t)
}

func TestCancelAppointment(t *testing.T) {
	t.Run("Deletes without touching the agenda by default", func(t *testing.T) {
		f := newBookingFixture()
		f.appointments.On("FindAppointmentByID", mock.Anything, "cita-1").Return(&clinic_dto.Appointment{
			ID: "cita-1", PatientID: "pat-1", AgendaID: "ag-1", Status: clinic_dto.AppointmentStatusConfirmed,
		}, nil)
		f.appointments.On("DeleteAppointment", mock.Anything, "cita-1").Return(nil)

		err := f.usecase.CancelAppointment(context.Background(), "pat-1", "cita-1")
		assert.NoError(t, err)
		f.agendas.AssertNotCalled(t, "UpdateAgendaAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Releases the agenda when configured", func(t *testing.T) {
		f := newBookingFixture()
		f.usecase.config.Booking.ReleaseSlotOnCancel = true
		f.appointments.On("FindAppointmentByID", mock.Anything, "cita-1").Return(&clinic_dto.Appointment{
			ID: "cita-1", PatientID: "pat-1", AgendaID: "ag-1", Status: clinic_dto.AppointmentStatusConfirmed,
		}, nil)
		f.appointments.On("DeleteAppointment", mock.Anything, "cita-1").Return(nil)
		f.agendas.On("UpdateAgendaAvailability", mock.Anything, "ag-1", true).Return(nil)

		err := f.usecase.CancelAppointment(context.Background(), "pat-1", "cita-1")
		assert.NoError(t, err)
		f.agendas.AssertExpectations(t)
	})

	t.Run("Another patient's appointment is forbidden", func(t *testing.T) {
		f := newBookingFixture()
		f.appointments.On("FindAppointmentByID", mock.Anything, "cita-1").Return(&clinic_dto.Appointment{
			ID: "cita-1", PatientID: "pat-2", AgendaID: "ag-1", Status: clinic_dto.AppointmentStatusPending,
		}, nil)

		err := f.usecase.CancelAppointment(context.Background(), "pat-1", "cita-1")
		assert.Error(t, err)
		f.appointments.AssertNotCalled(t, "DeleteAppointment", mock.Anything, mock.Anything)
	})
}

func TestFindPendingAppointments(t *testing.T) {
	f := newBookingFixture()
	f.appointments.On("FindAppointmentsByStatus", mock.Anything, clinic_dto.AppointmentStatusPending).Return([]clinic_dto.Appointment{
		{ID: "cita-1", PatientID: "pat-1", DoctorID: "doc-1", Status: clinic_dto.AppointmentStatusPending},
	}, nil)
	f.patients.On("FindPatientByID", mock.Anything, "pat-1").Return(&clinic_dto.Patient{ID: "pat-1", Name: "Ana"}, nil)
	f.doctors.On("FindDoctorByID", mock.Anything, "doc-1").Return(&clinic_dto.Doctor{ID: "doc-1", Name: "Dra. Ruiz"}, nil)

	pending, err := f.usecase.FindPendingAppointments(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Ana", pending[0].PatientName)
	assert.Equal(t, "Dra. Ruiz", pending[0].DoctorName)
}
