package timeentry

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/ahmedalmoraly/clockin-system/internal/employee"
	"github.com/ahmedalmoraly/clockin-system/internal/events"
	"github.com/ahmedalmoraly/clockin-system/internal/messaging/kafka"
	"github.com/ahmedalmoraly/clockin-system/internal/shared/contextutil"
	timeentryerrors "github.com/ahmedalmoraly/clockin-system/internal/timeentry/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=timeentry_service.go -destination=mock/timeentry_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string) (EntryResponse, error)
	ClockOut(ctx context.Context, employeeID string) (EntryResponse, error)
	GetAll(ctx context.Context) ([]EntryResponse, error)
	GetForUser(ctx context.Context, userID string) ([]EntryResponse, error)
}

type service struct {
	repo      Repository
	directory employee.Service
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(repo Repository, directory employee.Service, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, directory, nil, logger...)
}

func NewServiceWithOutbox(
	repo Repository,
	directory employee.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timeentry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeentry.service")
	}
	return &service{
		repo:      repo,
		directory: directory,
		outbox:    outbox,
		logger:    l,
	}
}

func (s *service) ClockIn(ctx context.Context, employeeID string) (EntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("clock-in requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	emp, err := s.directory.GetByID(ctx, employeeID)
	if err != nil {
		s.logger.Error("clock-in directory lookup failed", zap.String("request_id", rid), zap.Error(err))
		return EntryResponse{}, err
	}

	// One open entry per employee: refuse instead of stacking a second
	// clock-in on top of an open one.
	open, err := s.findOpenEntry(ctx, employeeID)
	if err != nil {
		return EntryResponse{}, err
	}
	if open != nil {
		s.logger.Warn("clock-in refused, open entry exists",
			zap.String("employee_id", employeeID),
			zap.String("entry_id", open.ID),
		)
		return EntryResponse{}, timeentryerrors.ErrAlreadyClockedIn
	}

	now := time.Now().UTC()
	entry := TimeEntry{
		ID:       NewEntryID(),
		UserID:   emp.ID,
		UserName: emp.Name,
		Date:     now.Truncate(24 * time.Hour),
		ClockIn:  now,
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		s.logger.Error("clock-in persist failed", zap.String("request_id", rid), zap.Error(err))
		return EntryResponse{}, err
	}

	s.queueEvent(ctx, events.EventTypeClockIn, entry)

	s.logger.Info("clock-in success",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID),
		zap.String("entry_id", entry.ID),
	)
	return mapToResponse(entry), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string) (EntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("clock-out requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
	)

	open, err := s.findOpenEntry(ctx, employeeID)
	if err != nil {
		return EntryResponse{}, err
	}
	if open == nil {
		s.logger.Warn("clock-out with no open entry", zap.String("employee_id", employeeID))
		return EntryResponse{}, timeentryerrors.ErrNoOpenEntry
	}

	now := time.Now().UTC()
	open.ClockOut = &now

	if err := s.repo.Upsert(ctx, *open); err != nil {
		s.logger.Error("clock-out persist failed", zap.String("request_id", rid), zap.Error(err))
		return EntryResponse{}, err
	}

	s.queueEvent(ctx, events.EventTypeClockOut, *open)

	s.logger.Info("clock-out success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("entry_id", open.ID),
	)
	return mapToResponse(*open), nil
}

func (s *service) GetAll(ctx context.Context) ([]EntryResponse, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByRecency(entries)
	return mapToListResponse(entries), nil
}

func (s *service) GetForUser(ctx context.Context, userID string) ([]EntryResponse, error) {
	entries, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortByRecency(entries)
	return mapToListResponse(entries), nil
}

// findOpenEntry returns the newest open entry for the employee, nil if the
// employee is not clocked in.
func (s *service) findOpenEntry(ctx context.Context, employeeID string) (*TimeEntry, error) {
	entries, err := s.repo.ListForUser(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var open []TimeEntry
	for _, e := range entries {
		if e.Open() {
			open = append(open, e)
		}
	}
	if len(open) == 0 {
		return nil, nil
	}

	sortByRecency(open)
	return &open[0], nil
}

func (s *service) queueEvent(ctx context.Context, eventType string, entry TimeEntry) {
	if s.outbox == nil {
		return
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.TimeEntryClockedEvent{
		EventType:    eventType,
		RequestID:    rid,
		EntryID:      entry.ID,
		EmployeeID:   entry.UserID,
		EmployeeName: entry.UserName,
		OccurredAt:   time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal clock event failed", zap.String("request_id", rid), zap.Error(err))
		return
	}

	// The entry is already persisted; a queue failure only loses the event.
	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "time_entry",
		AggregateID:   entry.ID,
		EventType:     eventType,
		Topic:         events.TimeEntryClockedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue clock event failed",
			zap.String("entry_id", entry.ID),
			zap.Error(err),
		)
	}
}

func sortByRecency(entries []TimeEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ClockIn.After(entries[j].ClockIn)
	})
}

func mapToResponse(e TimeEntry) EntryResponse {
	resp := EntryResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		UserName:    e.UserName,
		Date:        e.Date.Format(DateLayout),
		ClockInTime: e.ClockIn.Format(clockLayout),
	}
	if e.ClockOut != nil {
		v := e.ClockOut.Format(clockLayout)
		resp.ClockOutTime = &v
	}
	return resp
}

func mapToListResponse(entries []TimeEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res
}
