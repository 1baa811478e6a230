package timeentry

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ahmedalmoraly/clockin-system/internal/credentials"
	"github.com/stretchr/testify/assert"
)

type fakeSheet struct {
	mu       sync.Mutex
	rows     [][]string
	getCalls int
}

func newFakeSheet(rows ...[]string) *fakeSheet {
	header := append([]string(nil), Columns.Columns...)
	return &fakeSheet{rows: append([][]string{header}, rows...)}
}

func (f *fakeSheet) Get(ctx context.Context, token, readRange string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	out := make([][]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeSheet) Append(ctx context.Context, token, writeRange string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeSheet) Update(ctx context.Context, token, writeRange string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rowNumber, last int
	if _, err := fmt.Sscanf(writeRange, "Timetracker!A%d:F%d", &rowNumber, &last); err != nil {
		return err
	}
	f.rows[rowNumber-1] = rows[0]
	return nil
}

func openEntryRow(id, userID, userName string) []string {
	return []string{id, userID, userName, "2026-03-09", "2026-03-09T09:00:00Z"}
}

func TestRepository_ListAll(t *testing.T) {
	sheet := newFakeSheet(
		openEntryRow("aaa111aaa", "emp-1", "Alice"),
		[]string{"bbb222bbb", "emp-2", "Bob", "2026-03-09", "2026-03-09T08:00:00Z", "2026-03-09T16:00:00Z"},
	)
	repo := NewRepository(sheet, credentials.StaticProvider("tok"))

	entries, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.True(t, entries[0].Open())
	assert.False(t, entries[1].Open())
}

func TestRepository_ListForUser(t *testing.T) {
	sheet := newFakeSheet(
		openEntryRow("aaa111aaa", "emp-1", "Alice"),
		openEntryRow("bbb222bbb", "emp-2", "Bob"),
	)
	repo := NewRepository(sheet, credentials.StaticProvider("tok"))

	entries, err := repo.ListForUser(context.Background(), "emp-2")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "bbb222bbb", entries[0].ID)
}

func TestRepository_NoCredentialsFailsBeforeRemoteCall(t *testing.T) {
	sheet := newFakeSheet()
	repo := NewRepository(sheet, credentials.StaticProvider(""))

	_, err := repo.ListAll(context.Background())
	assert.Error(t, err)

	err = repo.Upsert(context.Background(), TimeEntry{ID: "aaa111aaa"})
	assert.Error(t, err)

	assert.Equal(t, 0, sheet.getCalls)
}

func TestRepository_UpsertAppendsUnknownID(t *testing.T) {
	sheet := newFakeSheet()
	repo := NewRepository(sheet, credentials.StaticProvider("tok"))

	entry := TimeEntry{
		ID:       "aaa111aaa",
		UserID:   "emp-1",
		UserName: "Alice",
		Date:     time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		ClockIn:  time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, repo.Upsert(context.Background(), entry))
	assert.Len(t, sheet.rows, 2)
}

func TestRepository_UpsertOverwritesExistingRow(t *testing.T) {
	sheet := newFakeSheet(openEntryRow("aaa111aaa", "emp-1", "Alice"))
	repo := NewRepository(sheet, credentials.StaticProvider("tok"))

	clockIn := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)
	entry := TimeEntry{
		ID:       "aaa111aaa",
		UserID:   "emp-1",
		UserName: "Alice",
		Date:     time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		ClockIn:  clockIn,
		ClockOut: &clockOut,
	}
	assert.NoError(t, repo.Upsert(context.Background(), entry))

	// Still header + one data row, now closed.
	assert.Len(t, sheet.rows, 2)
	assert.Equal(t, clockOut.Format(time.RFC3339), sheet.rows[1][5])
}

func TestRepository_ConcurrentUpsertsOfDistinctEntries(t *testing.T) {
	sheet := newFakeSheet()
	repo := NewRepository(sheet, credentials.StaticProvider("tok"))

	base := TimeEntry{
		UserName: "Alice",
		Date:     time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		ClockIn:  time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
	}

	var wg sync.WaitGroup
	for _, id := range []string{"aaa111aaa", "bbb222bbb"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			entry := base
			entry.ID = id
			entry.UserID = id
			assert.NoError(t, repo.Upsert(context.Background(), entry))
		}(id)
	}
	wg.Wait()

	entries, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRepository_RejectsUnexpectedHeader(t *testing.T) {
	sheet := newFakeSheet()
	sheet.rows[0] = []string{"id", "fullName", "userName", "date", "clockInTime", "clockOutTime"}
	repo := NewRepository(sheet, credentials.StaticProvider("tok"))

	_, err := repo.ListAll(context.Background())
	assert.Error(t, err)
}
