package emergency

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medichq/medic-api/internal/email"
	"github.com/medichq/medic-api/internal/model"
	"github.com/medichq/medic-api/internal/repository"
)

// Dispatcher owns one cancellable timer per created emergency. When a timer
// fires it re-reads the row and flips active to dispatched; if an admin
// updated the emergency first the pending timer is cancelled instead.
// Timers live in memory only, so a restart loses pending transitions.
type Dispatcher struct {
	repo   repository.EmergencyRepository
	mailer email.Service
	delay  time.Duration

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

func NewDispatcher(repo repository.EmergencyRepository, mailer email.Service, delay time.Duration) *Dispatcher {
	return &Dispatcher{
		repo:   repo,
		mailer: mailer,
		delay:  delay,
		timers: make(map[uuid.UUID]*time.Timer),
	}
}

// Schedule arms the auto-dispatch timer for an emergency. Fire-and-forget:
// the create response never waits on it.
func (d *Dispatcher) Schedule(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[id]; ok {
		t.Stop()
	}
	d.timers[id] = time.AfterFunc(d.delay, func() {
		d.fire(id)
	})
}

// Cancel drops the pending timer for an emergency, if any.
func (d *Dispatcher) Cancel(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[id]; ok {
		t.Stop()
		delete(d.timers, id)
	}
}

// Stop cancels every pending timer.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
}

func (d *Dispatcher) fire(id uuid.UUID) {
	d.mu.Lock()
	delete(d.timers, id)
	d.mu.Unlock()

	ctx := context.Background()
	e, err := d.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("emergency_id", id.String()).Msg("auto-dispatch lookup failed")
		return
	}
	if e.Status != model.EmergencyStatusActive {
		return
	}

	e.Status = model.EmergencyStatusDispatched
	if err := d.repo.Update(ctx, e); err != nil {
		log.Error().Err(err).Str("emergency_id", id.String()).Msg("auto-dispatch update failed")
		return
	}
	log.Info().Str("emergency_id", id.String()).Msg("emergency auto-dispatched")

	if err := d.mailer.SendEmergencyAlert(e); err != nil {
		log.Error().Err(err).Str("emergency_id", id.String()).Msg("dispatch alert mail failed")
	}
}
