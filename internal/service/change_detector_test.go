package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"salon-booking-engine/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestDiffSnapshot_CreatedAndStatusChanged(t *testing.T) {
	existing := entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusConfirmed}
	fresh := entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusScheduled}

	known := Snapshot{existing.ID: entity.AppointmentStatusScheduled}
	current := []entity.Appointment{existing, fresh}

	events, next := DiffSnapshot(known, current)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(events), events)
	}

	byID := map[uuid.UUID]ChangeEvent{}
	for _, e := range events {
		byID[e.Appointment.ID] = e
	}

	changed := byID[existing.ID]
	if changed.Type != ChangeEventStatusChanged || changed.OldStatus != entity.AppointmentStatusScheduled || changed.NewStatus != entity.AppointmentStatusConfirmed {
		t.Fatalf("unexpected status-change event: %+v", changed)
	}
	created := byID[fresh.ID]
	if created.Type != ChangeEventCreated || created.NewStatus != entity.AppointmentStatusScheduled {
		t.Fatalf("unexpected created event: %+v", created)
	}

	if next[existing.ID] != entity.AppointmentStatusConfirmed || next[fresh.ID] != entity.AppointmentStatusScheduled {
		t.Fatalf("snapshot not advanced: %+v", next)
	}
}

func TestDiffSnapshot_Idempotent(t *testing.T) {
	current := []entity.Appointment{
		{ID: uuid.New(), Status: entity.AppointmentStatusConfirmed},
		{ID: uuid.New(), Status: entity.AppointmentStatusCompleted},
	}

	events, snapshot := DiffSnapshot(Snapshot{}, current)
	if len(events) != 2 {
		t.Fatalf("first diff: expected 2 events, got %d", len(events))
	}

	// Feeding the new snapshot back with identical state emits nothing.
	events, snapshot = DiffSnapshot(snapshot, current)
	if len(events) != 0 {
		t.Fatalf("second diff must be empty, got %+v", events)
	}

	events, _ = DiffSnapshot(snapshot, current)
	if len(events) != 0 {
		t.Fatalf("third diff must be empty, got %+v", events)
	}
}

func TestDiffSnapshot_IndependentSnapshots(t *testing.T) {
	appt := entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusConfirmed}
	current := []entity.Appointment{appt}

	// Two independent observers each see the creation once.
	eventsA, _ := DiffSnapshot(Snapshot{}, current)
	eventsB, _ := DiffSnapshot(Snapshot{}, current)
	if len(eventsA) != 1 || len(eventsB) != 1 {
		t.Fatalf("independent snapshots interfered: a=%d b=%d", len(eventsA), len(eventsB))
	}
}

func TestSnapshotFromAppointments(t *testing.T) {
	appt := entity.Appointment{ID: uuid.New(), Status: entity.AppointmentStatusConfirmed}
	snapshot := SnapshotFromAppointments([]entity.Appointment{appt})

	events, _ := DiffSnapshot(snapshot, []entity.Appointment{appt})
	if len(events) != 0 {
		t.Fatalf("primed snapshot must not replay existing records: %+v", events)
	}
}

type stubAppointmentRepo struct {
	mu      sync.Mutex
	current []entity.Appointment
}

func (s *stubAppointmentRepo) set(appointments []entity.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = appointments
}

func (s *stubAppointmentRepo) Create(db *gorm.DB, a *entity.Appointment) error { return nil }
func (s *stubAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) FindByBusiness(db *gorm.DB, businessID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Appointment(nil), s.current...), nil
}
func (s *stubAppointmentRepo) FindActiveByProfessionalAndDate(db *gorm.DB, professionalID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) FindCompletedByBusinessAndDateRange(db *gorm.DB, businessID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, oldStatus, newStatus entity.AppointmentStatus) (int64, error) {
	return 0, nil
}

type countingNotifier struct {
	mu     sync.Mutex
	events []ChangeEvent
}

func (n *countingNotifier) Notify(ctx context.Context, event ChangeEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *countingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

func TestChangeDetector_StopPreventsFurtherEmissions(t *testing.T) {
	log := logrusTestLogger()
	repo := &stubAppointmentRepo{}
	notifier := &countingNotifier{}
	businessID := uuid.New()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	repo.set([]entity.Appointment{
		{ID: uuid.New(), BusinessID: businessID, Date: today, Status: entity.AppointmentStatusConfirmed},
	})

	detector := NewChangeDetector(nil, log, repo, notifier, businessID, 5*time.Millisecond, 7, nil)
	detector.Start()

	// Wait until the first poll emitted the creation.
	deadline := time.Now().Add(time.Second)
	for notifier.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if notifier.count() != 1 {
		t.Fatalf("expected exactly 1 event before stop, got %d", notifier.count())
	}

	detector.Stop()
	detector.Stop() // safe to call twice

	seen := notifier.count()
	repo.set([]entity.Appointment{
		{ID: uuid.New(), BusinessID: businessID, Date: today, Status: entity.AppointmentStatusConfirmed},
	})
	time.Sleep(30 * time.Millisecond)
	if notifier.count() != seen {
		t.Fatalf("detector emitted after Stop: before=%d after=%d", seen, notifier.count())
	}
}
