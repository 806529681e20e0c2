package booking

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"citamed-service/internal/app/config"
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

const minReasonLength = 10

// BookingUsecase coordinates the appointment lifecycle against the clinic
// backend: request → pending, then an administrator confirms or rejects.
// Status and agenda availability live in two separate resources, so the
// confirm/reject paths are a two-step update with a compensation attempt.
type BookingUsecase struct {
	appointments contracts.AppointmentBackendClient
	agendas      contracts.AgendaBackendClient
	patients     contracts.PatientBackendClient
	doctors      contracts.DoctorBackendClient
	admins       contracts.AdministratorBackendClient
	mailer       contracts.MailerService
	whatsapp     contracts.WhatsAppService
	config       *config.InternalConfig
	logger       *zap.Logger
}

func NewBookingUsecase(
	appointments contracts.AppointmentBackendClient,
	agendas contracts.AgendaBackendClient,
	patients contracts.PatientBackendClient,
	doctors contracts.DoctorBackendClient,
	admins contracts.AdministratorBackendClient,
	mailer contracts.MailerService,
	whatsapp contracts.WhatsAppService,
	config *config.InternalConfig,
	logger *zap.Logger,
) *BookingUsecase {
	return &BookingUsecase{
		appointments: appointments,
		agendas:      agendas,
		patients:     patients,
		doctors:      doctors,
		admins:       admins,
		mailer:       mailer,
		whatsapp:     whatsapp,
		config:       config,
		logger:       logger,
	}
}

// RequestAppointment checks the agenda is still available, creates the
// appointment in pending state and notifies the patient and every
// administrator. Notifications are best-effort. The availability check is
// read-then-write; the backend stays the final arbiter and its conflict
// answer maps to the same slot-unavailable error.
func (u *BookingUsecase) RequestAppointment(ctx context.Context, patientID string, request *requests.CreateAppointmentRequest) (*clinic_dto.Appointment, error) {
	if utf8.RuneCountInString(request.Reason) < minReasonLength {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("the reason must be at least %d characters", minReasonLength))
	}

	slot, err := u.agendas.FindAgendaByID(ctx, request.AgendaID)
	if err != nil {
		return nil, err
	}
	if !slot.Available {
		return nil, exceptions.ErrSlotUnavailable(nil)
	}

	appointment := &clinic_dto.Appointment{
		PatientID: patientID,
		DoctorID:  slot.DoctorID,
		AgendaID:  slot.ID,
		Reason:    request.Reason,
		Status:    clinic_dto.AppointmentStatusPending,
		Date:      slot.Date,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}
	created, err := u.appointments.CreateAppointment(ctx, appointment)
	if err != nil {
		if exceptions.IsConflict(err) {
			return nil, exceptions.ErrSlotUnavailable(err)
		}
		return nil, err
	}
	u.logger.Info("appointment requested",
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAgendaIDKey, slot.ID),
	)

	u.notifyAppointmentRequested(ctx, created)
	return created, nil
}

// ConfirmAppointment moves a pending appointment to confirmed and marks its
// agenda unavailable. If the second write fails the status update is
// compensated back to pending; when even the compensation fails the caller
// receives a partial-update error carrying which half succeeded.
func (u *BookingUsecase) ConfirmAppointment(ctx context.Context, appointmentID string) (*clinic_dto.Appointment, error) {
	return u.transition(ctx, appointmentID, clinic_dto.AppointmentStatusConfirmed, false)
}

// RejectAppointment is symmetric to confirm: status to rejected, agenda back
// to available.
func (u *BookingUsecase) RejectAppointment(ctx context.Context, appointmentID string) (*clinic_dto.Appointment, error) {
	return u.transition(ctx, appointmentID, clinic_dto.AppointmentStatusRejected, true)
}

func (u *BookingUsecase) transition(ctx context.Context, appointmentID string, target clinic_dto.AppointmentStatus, available bool) (*clinic_dto.Appointment, error) {
	appointment, err := u.appointments.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.Status != clinic_dto.AppointmentStatusPending {
		return nil, exceptions.BuildNewCustomError(
			nil,
			constvars.StatusConflict,
			constvars.ErrClientStaleData,
			fmt.Sprintf("appointment %s is %s, only pending appointments can transition", appointmentID, appointment.Status),
		)
	}

	if err := u.appointments.UpdateAppointmentStatus(ctx, appointmentID, target); err != nil {
		return nil, err
	}
	if err := u.agendas.UpdateAgendaAvailability(ctx, appointment.AgendaID, available); err != nil {
		// compensate the status write so both halves stay in step
		if compErr := u.appointments.UpdateAppointmentStatus(ctx, appointmentID, clinic_dto.AppointmentStatusPending); compErr != nil {
			partial := &exceptions.PartialUpdateError{
				AppointmentID: appointmentID,
				AgendaID:      appointment.AgendaID,
				StatusUpdated: true,
				Cause:         errors.Join(err, compErr),
			}
			u.logger.With(zap.Error(partial)).Error("appointment transition left inconsistent",
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.String(constvars.LoggingAgendaIDKey, appointment.AgendaID),
			)
			return nil, exceptions.ErrPartialUpdate(partial)
		}
		return nil, err
	}

	appointment.Status = target
	u.logger.Info("appointment transitioned",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("status", string(target)),
	)
	return appointment, nil
}

// CancelAppointment deletes the appointment. Releasing the agenda on cancel
// is an explicit configuration choice, off by default.
func (u *BookingUsecase) CancelAppointment(ctx context.Context, patientID, appointmentID string) error {
	appointment, err := u.appointments.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if patientID != "" && appointment.PatientID != patientID {
		return exceptions.BuildNewCustomError(
			nil,
			constvars.StatusForbidden,
			constvars.ErrClientNotAuthorized,
			"appointment belongs to another patient",
		)
	}
	if err := u.appointments.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}
	if u.config.Booking.ReleaseSlotOnCancel && appointment.Status == clinic_dto.AppointmentStatusConfirmed {
		if err := u.agendas.UpdateAgendaAvailability(ctx, appointment.AgendaID, true); err != nil {
			partial := &exceptions.PartialUpdateError{
				AppointmentID: appointmentID,
				AgendaID:      appointment.AgendaID,
				StatusUpdated: true,
				Cause:         err,
			}
			return exceptions.ErrPartialUpdate(partial)
		}
	}
	u.logger.Info("appointment cancelled", zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
	return nil
}

// FindPendingAppointments lists pending requests with patient and doctor
// names resolved for the admin review screen.
func (u *BookingUsecase) FindPendingAppointments(ctx context.Context) ([]clinic_dto.Appointment, error) {
	pending, err := u.appointments.FindAppointmentsByStatus(ctx, clinic_dto.AppointmentStatusPending)
	if err != nil {
		return nil, err
	}
	for i := range pending {
		if patient, err := u.patients.FindPatientByID(ctx, pending[i].PatientID); err == nil {
			pending[i].PatientName = patient.Name
		}
		if doctor, err := u.doctors.FindDoctorByID(ctx, pending[i].DoctorID); err == nil {
			pending[i].DoctorName = doctor.Name
		}
	}
	return pending, nil
}

func (u *BookingUsecase) FindAppointmentsByPatientID(ctx context.Context, patientID string) ([]clinic_dto.Appointment, error) {
	return u.appointments.FindAppointmentsByPatientID(ctx, patientID)
}

func (u *BookingUsecase) notifyAppointmentRequested(ctx context.Context, appointment *clinic_dto.Appointment) {
	patient, err := u.patients.FindPatientByID(ctx, appointment.PatientID)
	if err != nil {
		u.logger.With(zap.Error(err)).Warn("cannot resolve patient for notification",
			zap.String(constvars.LoggingPatientIDKey, appointment.PatientID),
		)
		return
	}

	if patient.Email != "" {
		payload := &requests.EmailPayload{
			To:      patient.Email,
			Subject: constvars.EmailAppointmentPendingSubject,
			Body:    fmt.Sprintf(constvars.EmailBodyAppointmentPending, appointment.Date, appointment.StartTime),
		}
		if err := u.mailer.SendEmail(ctx, payload); err != nil {
			u.logger.With(zap.Error(err)).Warn("patient email notification failed")
		}
	}
	if patient.Phone != "" {
		message := &requests.WhatsAppMessage{
			To:   patient.Phone,
			Body: fmt.Sprintf(constvars.WhatsAppBodyAppointmentPending, appointment.Date, appointment.StartTime),
		}
		if err := u.whatsapp.SendMessage(ctx, message); err != nil {
			u.logger.With(zap.Error(err)).Warn("patient whatsapp notification failed")
		}
	}

	administrators, err := u.admins.FindAllAdministrators(ctx)
	if err != nil {
		u.logger.With(zap.Error(err)).Warn("cannot list administrators for notification")
		return
	}
	for _, admin := range administrators {
		if admin.Email == "" {
			continue
		}
		payload := &requests.EmailPayload{
			To:      admin.Email,
			Subject: constvars.EmailNewRequestForAdminsSubject,
			Body:    fmt.Sprintf(constvars.EmailBodyNewRequestForAdmins, patient.Name),
		}
		if err := u.mailer.SendEmail(ctx, payload); err != nil {
			u.logger.With(zap.Error(err)).Warn("admin email notification failed")
		}
	}
}
