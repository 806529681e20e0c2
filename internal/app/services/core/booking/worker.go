package booking

import (
	"context"
	"time"

	"citamed-service/internal/app/config"
	"citamed-service/internal/app/contracts"
	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey is the fixed key used to ensure a single reconcile leader.
const leaderLockKey = "booking-consistency:leader"

// Worker periodically repairs drift between appointment status and agenda
// availability: a confirmed appointment must hold its agenda, a rejected one
// must not. Partial failures during confirm/reject leave exactly this kind
// of drift behind, so the scan is idempotent and safe to rerun.
type Worker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	locker       contracts.LockerService
	appointments contracts.AppointmentBackendClient
	agendas      contracts.AgendaBackendClient
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, appointments contracts.AppointmentBackendClient, agendas contracts.AgendaBackendClient) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerSvc, appointments: appointments, agendas: agendas}
}

// Start begins the periodic loop.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Booking.ConsistencyCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("booking.worker: failed to schedule with provided cron spec; falling back to @hourly", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the worker cron and any in-flight scan.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := time.Duration(w.cfg.Booking.ConsistencyLockInSec) * time.Second
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, ttl)
	if err != nil {
		w.log.Warn("booking.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("booking.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, leaderLockKey, token)

	// NewTicker panics on a non-positive interval, which a zero or 1s lock
	// TTL would produce.
	interval := ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(ctx, leaderLockKey, token, ttl); err != nil {
					w.log.Warn("booking.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	repaired, err := w.ReconcileOnce(ctx)
	if err != nil {
		w.log.Warn("booking.worker: reconcile scan failed", zap.Error(err))
		return
	}
	if repaired > 0 {
		w.log.Info("booking.worker: repaired drifted agendas", zap.Int("repaired", repaired))
	}
}

// ReconcileOnce scans confirmed and rejected appointments and flips any
// agenda whose availability flag disagrees with its appointments. An agenda
// stays held as long as at least one confirmed or pending appointment
// references it.
func (w *Worker) ReconcileOnce(ctx context.Context) (int, error) {
	confirmed, err := w.appointments.FindAppointmentsByStatus(ctx, clinic_dto.AppointmentStatusConfirmed)
	if err != nil {
		return 0, err
	}
	pending, err := w.appointments.FindAppointmentsByStatus(ctx, clinic_dto.AppointmentStatusPending)
	if err != nil {
		return 0, err
	}
	rejected, err := w.appointments.FindAppointmentsByStatus(ctx, clinic_dto.AppointmentStatusRejected)
	if err != nil {
		return 0, err
	}

	held := make(map[string]bool, len(confirmed)+len(pending))
	for _, appointment := range confirmed {
		held[appointment.AgendaID] = true
	}
	for _, appointment := range pending {
		held[appointment.AgendaID] = true
	}

	repaired := 0
	for _, appointment := range confirmed {
		slot, err := w.agendas.FindAgendaByID(ctx, appointment.AgendaID)
		if err != nil {
			w.log.Warn("booking.worker: cannot load agenda for confirmed appointment",
				zap.Error(err),
				zap.String(constvars.LoggingAgendaIDKey, appointment.AgendaID),
			)
			continue
		}
		if slot.Available {
			if err := w.agendas.UpdateAgendaAvailability(ctx, slot.ID, false); err != nil {
				w.log.Warn("booking.worker: failed to hold agenda", zap.Error(err))
				continue
			}
			repaired++
		}
	}
	for _, appointment := range rejected {
		if held[appointment.AgendaID] {
			continue
		}
		slot, err := w.agendas.FindAgendaByID(ctx, appointment.AgendaID)
		if err != nil {
			continue
		}
		if !slot.Available {
			if err := w.agendas.UpdateAgendaAvailability(ctx, slot.ID, true); err != nil {
				w.log.Warn("booking.worker: failed to release agenda", zap.Error(err))
				continue
			}
			repaired++
		}
	}
	return repaired, nil
}
