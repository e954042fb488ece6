package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"salon-booking-engine/internal/domain/entity"
	"salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ChangeEventType classifies what the detector observed.
type ChangeEventType string

const (
	ChangeEventCreated       ChangeEventType = "created"
	ChangeEventStatusChanged ChangeEventType = "status_changed"
)

// ChangeEvent is one observed change between two polls.
type ChangeEvent struct {
	Type        ChangeEventType
	Appointment entity.Appointment
	OldStatus   entity.AppointmentStatus
	NewStatus   entity.AppointmentStatus
}

// Snapshot is the detector's last known view: appointment id -> status.
// It is owned by whoever starts the detector; independent detectors never
// share one.
type Snapshot map[uuid.UUID]entity.AppointmentStatus

// SnapshotFromAppointments builds a baseline snapshot, typically used to
// prime a detector so a fresh start does not replay existing records as
// created events.
func SnapshotFromAppointments(appointments []entity.Appointment) Snapshot {
	snapshot := make(Snapshot, len(appointments))
	for _, appt := range appointments {
		snapshot[appt.ID] = appt.Status
	}
	return snapshot
}

// DiffSnapshot compares the known snapshot against the current full
// state and returns the events plus the new snapshot. It has no side
// effects: feeding the returned snapshot back with the same current
// state yields no events, which is what makes polling idempotent.
func DiffSnapshot(known Snapshot, current []entity.Appointment) ([]ChangeEvent, Snapshot) {
	next := make(Snapshot, len(current))
	var events []ChangeEvent

	for _, appt := range current {
		next[appt.ID] = appt.Status

		oldStatus, seen := known[appt.ID]
		if !seen {
			events = append(events, ChangeEvent{
				Type:        ChangeEventCreated,
				Appointment: appt,
				NewStatus:   appt.Status,
			})
			continue
		}
		if oldStatus != appt.Status {
			events = append(events, ChangeEvent{
				Type:        ChangeEventStatusChanged,
				Appointment: appt,
				OldStatus:   oldStatus,
				NewStatus:   appt.Status,
			})
		}
	}

	return events, next
}

// ChangeNotifier receives detector events. Notification failures are the
// notifier's problem; the detector keeps polling.
type ChangeNotifier interface {
	Notify(ctx context.Context, event ChangeEvent)
}

// ChangeDetector polls the appointment ledger for one business, diffs the
// full current state against its snapshot and notifies on creations and
// status changes. There is no server-side event log: each poll reads the
// authoritative current state.
//
// Polls never overlap: the next poll is scheduled a fixed delay after the
// previous one finishes. Stop is cooperative and does not interrupt an
// in-flight poll.
type ChangeDetector struct {
	db         *gorm.DB
	log        *logrus.Logger
	apptRepo   repository.AppointmentRepository
	notifier   ChangeNotifier
	businessID uuid.UUID
	interval   time.Duration
	windowDays int

	snapshot Snapshot

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// NewChangeDetector creates a detector for one business. The initial
// snapshot is caller-owned; pass nil to treat everything currently in the
// window as new on the first poll.
func NewChangeDetector(
	db *gorm.DB,
	log *logrus.Logger,
	apptRepo repository.AppointmentRepository,
	notifier ChangeNotifier,
	businessID uuid.UUID,
	interval time.Duration,
	windowDays int,
	initial Snapshot,
) *ChangeDetector {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if windowDays <= 0 {
		windowDays = 30
	}
	if initial == nil {
		initial = Snapshot{}
	}
	return &ChangeDetector{
		db:         db,
		log:        log,
		apptRepo:   apptRepo,
		notifier:   notifier,
		businessID: businessID,
		interval:   interval,
		windowDays: windowDays,
		snapshot:   initial,
		stopChan:   make(chan struct{}),
	}
}

// Start launches the polling loop.
func (d *ChangeDetector) Start() {
	d.wg.Add(1)
	go d.pollLoop()
}

// Stop shuts the detector down: no further polls start, and once the
// in-flight poll (if any) finishes, no further emissions happen.
// Safe to call multiple times.
func (d *ChangeDetector) Stop() {
	if d.stopped.CompareAndSwap(false, true) {
		close(d.stopChan)
		d.wg.Wait()
		d.log.Infof("Change detector stopped for business %s", d.businessID)
	}
}

func (d *ChangeDetector) pollLoop() {
	defer d.wg.Done()

	for {
		d.poll()

		timer := time.NewTimer(d.interval)
		select {
		case <-d.stopChan:
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (d *ChangeDetector) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), d.interval)
	defer cancel()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	filter := &entity.AppointmentFilter{
		StartAt: today.AddDate(0, 0, -d.windowDays).Format("2006-01-02"),
		EndAt:   today.AddDate(0, 0, d.windowDays).Format("2006-01-02"),
	}

	db := d.db
	if db != nil {
		db = db.WithContext(ctx)
	}
	current, err := d.apptRepo.FindByBusiness(db, d.businessID, filter)
	if err != nil {
		d.log.Warnf("Change detector poll failed for business %s: %+v", d.businessID, err)
		return
	}

	events, next := DiffSnapshot(d.snapshot, current)
	for _, event := range events {
		d.notifier.Notify(ctx, event)
	}
	d.snapshot = next
}
