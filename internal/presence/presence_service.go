package presence

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/ahmedalmoraly/clockin-system/internal/events"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const clockedInKey = "presence:clocked_in"

// Record is the projection of a clock_in event: who is on the clock right
// now. It is rebuilt entirely from the event stream, never from the sheet.
type Record struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	EntryID      string    `json:"entry_id"`
	Since        time.Time `json:"since"`
}

//go:generate mockgen -source=presence_service.go -destination=mock/presence_service_mock.go -package=mock
type Service interface {
	MarkIn(ctx context.Context, event events.TimeEntryClockedEvent) error
	MarkOut(ctx context.Context, event events.TimeEntryClockedEvent) error
	List(ctx context.Context) ([]Record, error)
}

type service struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("presence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("presence.service")
	}
	return &service{rdb: rdb, logger: l}
}

func (s *service) MarkIn(ctx context.Context, event events.TimeEntryClockedEvent) error {
	record := Record{
		EmployeeID:   event.EmployeeID,
		EmployeeName: event.EmployeeName,
		EntryID:      event.EntryID,
		Since:        event.OccurredAt,
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := s.rdb.HSet(ctx, clockedInKey, event.EmployeeID, payload).Err(); err != nil {
		return err
	}

	s.logger.Info("employee marked present",
		zap.String("employee_id", event.EmployeeID),
		zap.String("entry_id", event.EntryID),
	)
	return nil
}

func (s *service) MarkOut(ctx context.Context, event events.TimeEntryClockedEvent) error {
	if err := s.rdb.HDel(ctx, clockedInKey, event.EmployeeID).Err(); err != nil {
		return err
	}

	s.logger.Info("employee marked absent",
		zap.String("employee_id", event.EmployeeID),
		zap.String("entry_id", event.EntryID),
	)
	return nil
}

func (s *service) List(ctx context.Context) ([]Record, error) {
	fields, err := s.rdb.HGetAll(ctx, clockedInKey).Result()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(fields))
	for _, val := range fields {
		var record Record
		if err := json.Unmarshal([]byte(val), &record); err != nil {
			s.logger.Warn("skipping unreadable presence record", zap.Error(err))
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].EmployeeName < records[j].EmployeeName
	})
	return records, nil
}
