// Package memory is a process-local storage backend with the same
// transactional contract as the PostgreSQL one. Write transactions are
// serialized by a single lock and work on a private copy of the state that
// replaces the live state only when fn succeeds.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	state *state
}

type state struct {
	reservations map[uuid.UUID]*reservation.Reservation
	occupied     map[time.Time]uuid.UUID
	events       map[uuid.UUID]shared.ReservationEvent
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func newState() *state {
	return &state{
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		occupied:     make(map[time.Time]uuid.UUID),
		events:       make(map[uuid.UUID]shared.ReservationEvent),
	}
}

func (s *state) clone() *state {
	c := &state{
		reservations: make(map[uuid.UUID]*reservation.Reservation, len(s.reservations)),
		occupied:     make(map[time.Time]uuid.UUID, len(s.occupied)),
		events:       make(map[uuid.UUID]shared.ReservationEvent, len(s.events)),
	}
	// stored reservations are never mutated in place, so sharing pointers is safe
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.occupied {
		c.occupied[k] = v
	}
	for k, v := range s.events {
		c.events[k] = v
	}
	return c
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(ctx, &memTx{state: staged}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(ctx, &memTx{state: s.state, readOnly: true})
}

type memTx struct {
	state    *state
	readOnly bool
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{tx: t}
}

func (t *memTx) OccupiedDays() shared.OccupiedDayRepository {
	return &occupiedDayRepo{tx: t}
}

func (t *memTx) Events() shared.EventRepository {
	return &eventRepo{tx: t}
}

func (t *memTx) checkWritable() error {
	if t.readOnly {
		return infra.NewRepoErr(infra.KindDBFailure, "cannot write in a read-only transaction")
	}
	return nil
}

type reservationRepo struct {
	tx *memTx
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	stored, ok := r.tx.state.reservations[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return copyReservation(stored)
}

// the write lock is already held for the whole transaction
func (r *reservationRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	return r.FindByID(ctx, id)
}

func (r *reservationRepo) Insert(_ context.Context, res *reservation.Reservation) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, exists := r.tx.state.reservations[res.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "reservation already exists")
	}
	stored, err := copyReservation(res)
	if err != nil {
		return err
	}
	r.tx.state.reservations[res.ID()] = stored
	return nil
}

func (r *reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	current, ok := r.tx.state.reservations[res.ID()]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	if current.Version() != res.Version()-1 {
		return infra.NewRepoErr(infra.KindStaleVersion, "reservation version changed since it was read")
	}
	stored, err := copyReservation(res)
	if err != nil {
		return err
	}
	r.tx.state.reservations[res.ID()] = stored
	return nil
}

func copyReservation(res *reservation.Reservation) (*reservation.Reservation, error) {
	var cancelledOn *time.Time
	if day, ok := res.CancelledOn(); ok {
		cancelledOn = &day
	}
	c, err := reservation.ReconstructReservation(
		res.ID(), res.Guest(), res.Stay(), res.Status(), cancelledOn,
		res.Version(), res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted reservation", err, infra.KindDBFailure)
	}
	return c, nil
}

type occupiedDayRepo struct {
	tx *memTx
}

func (r *occupiedDayRepo) FindIntersecting(_ context.Context, from, to time.Time) ([]shared.OccupiedDay, error) {
	out := make([]shared.OccupiedDay, 0)
	for _, day := range calendar.DaysInRange(from, to) {
		if id, ok := r.tx.state.occupied[day]; ok {
			out = append(out, shared.OccupiedDay{Day: day, ReservationID: id})
		}
	}
	return out, nil
}

func (r *occupiedDayRepo) LockIntersecting(ctx context.Context, from, to time.Time) ([]shared.OccupiedDay, error) {
	return r.FindIntersecting(ctx, from, to)
}

func (r *occupiedDayRepo) InsertDays(_ context.Context, reservationID uuid.UUID, days []time.Time) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.state.reservations[reservationID]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "occupied day references unknown reservation")
	}
	seen := calendar.NewSet()
	for _, d := range days {
		day := calendar.Truncate(d)
		if _, taken := r.tx.state.occupied[day]; taken || seen.Has(day) {
			return infra.NewRepoErr(infra.KindDuplicateKey, "day "+calendar.Format(day)+" is already occupied")
		}
		seen[day] = struct{}{}
	}
	for day := range seen {
		r.tx.state.occupied[day] = reservationID
	}
	return nil
}

func (r *occupiedDayRepo) DeleteDays(_ context.Context, reservationID uuid.UUID, days []time.Time) (int64, error) {
	if err := r.tx.checkWritable(); err != nil {
		return 0, err
	}
	var deleted int64
	for _, d := range days {
		day := calendar.Truncate(d)
		if owner, ok := r.tx.state.occupied[day]; ok && owner == reservationID {
			delete(r.tx.state.occupied, day)
			deleted++
		}
	}
	return deleted, nil
}

type eventRepo struct {
	tx *memTx
}

func (r *eventRepo) Append(_ context.Context, event shared.ReservationEvent) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if _, exists := r.tx.state.events[event.ID]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "event already exists")
	}
	event.Status = shared.EventStatusPending
	event.Attempts = 0
	if event.CreatedAt.IsZero() {
		event.CreatedAt = event.RunAt
	}
	r.tx.state.events[event.ID] = event
	return nil
}

func (r *eventRepo) ClaimDue(_ context.Context, now time.Time, limit int) ([]shared.ReservationEvent, error) {
	due := make([]shared.ReservationEvent, 0)
	for _, ev := range r.tx.state.events {
		if ev.Status == shared.EventStatusPending && !ev.RunAt.After(now) {
			due = append(due, ev)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].RunAt.Equal(due[j].RunAt) {
			return due[i].CreatedAt.Before(due[j].CreatedAt)
		}
		return due[i].RunAt.Before(due[j].RunAt)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r *eventRepo) MarkSent(_ context.Context, id uuid.UUID, _ time.Time) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	ev, ok := r.tx.state.events[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	ev.Status = shared.EventStatusSent
	ev.Attempts++
	ev.LastError = ""
	r.tx.state.events[id] = ev
	return nil
}

func (r *eventRepo) MarkFailed(_ context.Context, id uuid.UUID, lastError string, nextRunAt time.Time, dead bool) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	ev, ok := r.tx.state.events[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "event not found")
	}
	ev.Status = shared.EventStatusPending
	if dead {
		ev.Status = shared.EventStatusDead
	}
	ev.Attempts++
	ev.LastError = lastError
	ev.RunAt = nextRunAt
	r.tx.state.events[id] = ev
	return nil
}
