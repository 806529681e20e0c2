package agenda

import (
	"context"
	"errors"
	"fmt"
	"time"

	"citamed-service/internal/app/config"
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/dto/responses"
	"citamed-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

const dayLockExpiration = 15 * time.Second

type AgendaUsecase struct {
	agendas contracts.AgendaBackendClient
	doctors contracts.DoctorBackendClient
	locker  contracts.LockerService
	config  *config.InternalConfig
	logger  *zap.Logger
	now     func() time.Time
}

func NewAgendaUsecase(
	agendas contracts.AgendaBackendClient,
	doctors contracts.DoctorBackendClient,
	locker contracts.LockerService,
	config *config.InternalConfig,
	logger *zap.Logger,
) *AgendaUsecase {
	return &AgendaUsecase{
		agendas: agendas,
		doctors: doctors,
		locker:  locker,
		config:  config,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateAgenda creates a single agenda on one explicit date. The doctor may
// hold at most one agenda per day on this path, regardless of time.
func (u *AgendaUsecase) CreateAgenda(ctx context.Context, request *requests.CreateAgendaRequest) (*clinic_dto.Agenda, error) {
	available := true
	if request.Available != nil {
		available = *request.Available
	}
	recurrence, err := NewSingleDate(request.DoctorID, request.Date, request.StartTime, request.EndTime, available, u.now())
	if err != nil {
		return nil, err
	}

	release, err := u.lockDoctorSchedule(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := u.reconcileForDoctor(ctx, recurrence, PolicyDuplicateByDate)
	if err != nil {
		return nil, err
	}
	if result.SkippedDuplicate > 0 {
		return nil, exceptions.BuildNewCustomError(
			nil,
			constvars.StatusConflict,
			constvars.ErrClientAgendaDuplicateDate,
			fmt.Sprintf("doctor %s already has an agenda on %s", request.DoctorID, request.Date),
		)
	}

	created, err := u.agendas.CreateAgenda(ctx, result.Slots[0].Slot)
	if err != nil {
		return nil, err
	}
	u.logger.Info("agenda created",
		zap.String(constvars.LoggingDoctorIDKey, created.DoctorID),
		zap.String(constvars.LoggingAgendaIDKey, created.ID),
	)
	return created, nil
}

// CreateRecurringAgendas expands the recurrence and persists every bookable
// candidate, skipping the ones that overlap an existing agenda. Existing
// agendas are fetched in one round-trip per doctor.
func (u *AgendaUsecase) CreateRecurringAgendas(ctx context.Context, request *requests.CreateRecurringAgendaRequest) (*responses.RecurringAgendaOutcome, error) {
	available := true
	if request.Available != nil {
		available = *request.Available
	}
	recurrence, err := NewRecurrence(
		request.DoctorID,
		request.RangeStart,
		request.RangeEnd,
		request.Weekdays,
		request.BlockStart,
		request.BlockEnd,
		available,
		u.now(),
	)
	if err != nil {
		return nil, err
	}

	release, err := u.lockDoctorSchedule(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	defer release()

	result, err := u.reconcileForDoctor(ctx, recurrence, PolicyOverlapByInterval)
	if err != nil {
		return nil, err
	}

	outcome := &responses.RecurringAgendaOutcome{
		Created:          make([]clinic_dto.Agenda, 0, result.Created),
		SkippedOverlap:   result.SkippedOverlap,
		SkippedDuplicate: result.SkippedDuplicate,
	}
	for _, classified := range result.Slots {
		if classified.Classification != Bookable {
			continue
		}
		created, err := u.agendas.CreateAgenda(ctx, classified.Slot)
		if err != nil {
			// the backend is the final arbiter; a concurrent writer may
			// have taken the date since the listing
			if exceptions.IsConflict(err) {
				outcome.SkippedOverlap++
				continue
			}
			return nil, err
		}
		outcome.Created = append(outcome.Created, *created)
	}
	u.logger.Info("recurring agendas created",
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.Int("created", len(outcome.Created)),
		zap.Int("skipped_overlap", outcome.SkippedOverlap),
		zap.Int("skipped_duplicate", outcome.SkippedDuplicate),
	)
	return outcome, nil
}

// lockDoctorSchedule takes the doctor-scoped schedule lock so two admins
// changing the same doctor's schedule do not interleave. The returned release
// must be deferred by the caller: the lock has to stay held across both the
// classification and the backend writes it feeds, otherwise a second caller
// could classify against a listing that misses slots accepted but not yet
// persisted by the first.
func (u *AgendaUsecase) lockDoctorSchedule(ctx context.Context, doctorID string) (release func(), err error) {
	lockKey := fmt.Sprintf("agenda-reconcile:%s", doctorID)
	acquired, lockValue, err := u.locker.TryLock(ctx, lockKey, dayLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.BuildNewCustomError(
			nil,
			constvars.StatusConflict,
			constvars.ErrClientCannotProcessRequest,
			"another schedule change for this doctor is in progress",
		)
	}
	return func() {
		if unlockErr := u.locker.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			u.logger.With(zap.Error(unlockErr)).Warn("failed to release schedule lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
			)
		}
	}, nil
}

// reconcileForDoctor lists the doctor's existing agendas once and classifies
// the whole candidate sequence against them. Callers hold the doctor
// schedule lock around this call and the persist loop that follows it.
func (u *AgendaUsecase) reconcileForDoctor(ctx context.Context, recurrence *Recurrence, policy Policy) (*ReconcileResult, error) {
	existing, err := u.agendas.FindAgendasByDoctorID(ctx, recurrence.DoctorID)
	if err != nil {
		return nil, err
	}
	result, err := Reconcile(recurrence.Slots(), existing, policy)
	if err != nil {
		return nil, err
	}
	if len(result.Slots) == 0 {
		return nil, exceptions.ErrInputValidation(errors.New("the recurrence produced no dates"))
	}
	return result, nil
}

func (u *AgendaUsecase) FindAgendasByDoctorID(ctx context.Context, doctorID string) ([]clinic_dto.Agenda, error) {
	if _, err := u.doctors.FindDoctorByID(ctx, doctorID); err != nil {
		return nil, err
	}
	return u.agendas.FindAgendasByDoctorID(ctx, doctorID)
}

// FindAvailableAgendas lists every bookable agenda with the doctor name
// resolved for display.
func (u *AgendaUsecase) FindAvailableAgendas(ctx context.Context) ([]clinic_dto.Agenda, error) {
	agendas, err := u.agendas.FindAvailableAgendas(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := u.doctors.FindAllDoctors(ctx)
	if err != nil {
		return nil, err
	}
	namesByID := make(map[string]string, len(doctors))
	for _, doctor := range doctors {
		namesByID[doctor.ID] = doctor.Name
	}
	for i := range agendas {
		agendas[i].DoctorName = namesByID[agendas[i].DoctorID]
	}
	return agendas, nil
}

func (u *AgendaUsecase) UpdateAgenda(ctx context.Context, agendaID string, request *requests.UpdateAgendaRequest) (*clinic_dto.Agenda, error) {
	current, err := u.agendas.FindAgendaByID(ctx, agendaID)
	if err != nil {
		return nil, err
	}
	block, err := IntervalOf(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}
	if block.Start >= block.End {
		return nil, exceptions.ErrInputValidation(errors.New("the start time must be before the end time"))
	}
	current.Date = request.Date
	current.StartTime = request.StartTime
	current.EndTime = request.EndTime
	if request.Available != nil {
		current.Available = *request.Available
	}
	return u.agendas.UpdateAgenda(ctx, current)
}

func (u *AgendaUsecase) UpdateAgendaAvailability(ctx context.Context, agendaID string, request *requests.UpdateAgendaAvailabilityRequest) error {
	return u.agendas.UpdateAgendaAvailability(ctx, agendaID, *request.Available)
}

func (u *AgendaUsecase) DeleteAgenda(ctx context.Context, agendaID string) error {
	err := u.agendas.DeleteAgenda(ctx, agendaID)
	if err != nil {
		return err
	}
	u.logger.Info("agenda deleted", zap.String(constvars.LoggingAgendaIDKey, agendaID))
	return nil
}
