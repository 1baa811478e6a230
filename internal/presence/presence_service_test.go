package presence

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ahmedalmoraly/clockin-system/internal/events"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestService_MarkInAndOut(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb)
	ctx := context.Background()

	occurred := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	event := events.TimeEntryClockedEvent{
		EventType:    events.EventTypeClockIn,
		EntryID:      "aaa111aaa",
		EmployeeID:   "emp-1",
		EmployeeName: "Alice",
		OccurredAt:   occurred,
	}
	payload, _ := json.Marshal(Record{
		EmployeeID:   "emp-1",
		EmployeeName: "Alice",
		EntryID:      "aaa111aaa",
		Since:        occurred,
	})

	mock.ExpectHSet("presence:clocked_in", "emp-1", payload).SetVal(1)
	assert.NoError(t, svc.MarkIn(ctx, event))

	mock.ExpectHDel("presence:clocked_in", "emp-1").SetVal(1)
	assert.NoError(t, svc.MarkOut(ctx, event))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ListSortsByName(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb)

	since := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	bob, _ := json.Marshal(Record{EmployeeID: "emp-2", EmployeeName: "Bob", EntryID: "bbb222bbb", Since: since})
	alice, _ := json.Marshal(Record{EmployeeID: "emp-1", EmployeeName: "Alice", EntryID: "aaa111aaa", Since: since})

	mock.ExpectHGetAll("presence:clocked_in").SetVal(map[string]string{
		"emp-2": string(bob),
		"emp-1": string(alice),
	})

	records, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Alice", records[0].EmployeeName)
	assert.Equal(t, "Bob", records[1].EmployeeName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ListSkipsUnreadableRecords(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	svc := NewService(rdb)

	since := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	alice, _ := json.Marshal(Record{EmployeeID: "emp-1", EmployeeName: "Alice", EntryID: "aaa111aaa", Since: since})

	mock.ExpectHGetAll("presence:clocked_in").SetVal(map[string]string{
		"emp-1": string(alice),
		"emp-9": "{not json",
	})

	records, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}
