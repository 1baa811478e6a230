package timeentry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ahmedalmoraly/clockin-system/internal/employee"
	"github.com/ahmedalmoraly/clockin-system/internal/events"
	"github.com/ahmedalmoraly/clockin-system/internal/messaging/kafka"
	timeentryerrors "github.com/ahmedalmoraly/clockin-system/internal/timeentry/errors"
	"github.com/stretchr/testify/assert"
)

type memRepo struct {
	mu      sync.Mutex
	entries []TimeEntry
	upserts int
}

func (r *memRepo) ListAll(ctx context.Context) ([]TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]TimeEntry(nil), r.entries...), nil
}

func (r *memRepo) ListForUser(ctx context.Context, userID string) ([]TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []TimeEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memRepo) Upsert(ctx context.Context, entry TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	for i, e := range r.entries {
		if e.ID == entry.ID {
			r.entries[i] = entry
			return nil
		}
	}
	r.entries = append(r.entries, entry)
	return nil
}

type fakeDirectory struct {
	employees []employee.EmployeeResponse
}

func (f *fakeDirectory) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.employees, nil
}

func (f *fakeDirectory) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.EmployeeResponse{}, assert.AnError
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func newTestService() (Service, *memRepo, *fakeOutbox) {
	repo := &memRepo{}
	directory := &fakeDirectory{employees: []employee.EmployeeResponse{
		{ID: "emp-1", Name: "Alice", Email: "alice@example.com"},
		{ID: "emp-2", Name: "Bob", Email: "bob@example.com"},
	}}
	outbox := &fakeOutbox{}
	return NewServiceWithOutbox(repo, directory, outbox), repo, outbox
}

func TestService_ClockInCreatesOpenEntry(t *testing.T) {
	svc, repo, outbox := newTestService()
	ctx := context.Background()

	resp, err := svc.ClockIn(ctx, "emp-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "emp-1", resp.UserID)
	assert.Equal(t, "Alice", resp.UserName)
	assert.Nil(t, resp.ClockOutTime)
	assert.Equal(t, time.Now().UTC().Truncate(24*time.Hour).Format(DateLayout), resp.Date)

	assert.Len(t, repo.entries, 1)
	assert.True(t, repo.entries[0].Open())

	assert.Len(t, outbox.created, 1)
	assert.Equal(t, events.EventTypeClockIn, outbox.created[0].EventType)
	assert.Equal(t, events.TimeEntryClockedTopic, outbox.created[0].Topic)
}

func TestService_ClockInRefusedWhileClockedIn(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ClockIn(ctx, "emp-1")
	assert.NoError(t, err)

	_, err = svc.ClockIn(ctx, "emp-1")
	assert.ErrorIs(t, err, timeentryerrors.ErrAlreadyClockedIn)
	assert.Len(t, repo.entries, 1)
}

func TestService_ClockInUnknownEmployee(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.ClockIn(context.Background(), "emp-404")
	assert.Error(t, err)
	assert.Empty(t, repo.entries)
}

func TestService_ClockOutClosesTheOpenEntry(t *testing.T) {
	svc, repo, outbox := newTestService()
	ctx := context.Background()

	inResp, err := svc.ClockIn(ctx, "emp-1")
	assert.NoError(t, err)

	outResp, err := svc.ClockOut(ctx, "emp-1")
	assert.NoError(t, err)
	assert.Equal(t, inResp.ID, outResp.ID)
	assert.NotNil(t, outResp.ClockOutTime)

	// Closed in place, not duplicated.
	assert.Len(t, repo.entries, 1)
	assert.False(t, repo.entries[0].Open())

	assert.Len(t, outbox.created, 2)
	assert.Equal(t, events.EventTypeClockOut, outbox.created[1].EventType)
}

func TestService_ClockOutWithoutOpenEntry(t *testing.T) {
	svc, repo, outbox := newTestService()

	_, err := svc.ClockOut(context.Background(), "emp-1")
	assert.ErrorIs(t, err, timeentryerrors.ErrNoOpenEntry)
	assert.Equal(t, 0, repo.upserts)
	assert.Empty(t, outbox.created)
}

func TestService_ClockOutPicksNewestOpenEntry(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	older := time.Now().UTC().Add(-48 * time.Hour)
	newer := time.Now().UTC().Add(-1 * time.Hour)
	repo.entries = []TimeEntry{
		{ID: "aaa111aaa", UserID: "emp-1", UserName: "Alice", Date: older.Truncate(24 * time.Hour), ClockIn: older},
		{ID: "bbb222bbb", UserID: "emp-1", UserName: "Alice", Date: newer.Truncate(24 * time.Hour), ClockIn: newer},
	}

	resp, err := svc.ClockOut(ctx, "emp-1")
	assert.NoError(t, err)
	assert.Equal(t, "bbb222bbb", resp.ID)
}

func TestService_GetForUserSortsByRecency(t *testing.T) {
	svc, repo, _ := newTestService()

	old := time.Now().UTC().Add(-48 * time.Hour)
	recent := time.Now().UTC().Add(-2 * time.Hour)
	closedAt := old.Add(8 * time.Hour)
	repo.entries = []TimeEntry{
		{ID: "aaa111aaa", UserID: "emp-1", UserName: "Alice", Date: old.Truncate(24 * time.Hour), ClockIn: old, ClockOut: &closedAt},
		{ID: "bbb222bbb", UserID: "emp-2", UserName: "Bob", Date: recent.Truncate(24 * time.Hour), ClockIn: recent},
		{ID: "ccc333ccc", UserID: "emp-1", UserName: "Alice", Date: recent.Truncate(24 * time.Hour), ClockIn: recent},
	}

	entries, err := svc.GetForUser(context.Background(), "emp-1")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "ccc333ccc", entries[0].ID)
	assert.Equal(t, "aaa111aaa", entries[1].ID)
}
