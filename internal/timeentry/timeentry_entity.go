package timeentry

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"time"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
	"github.com/ahmedalmoraly/clockin-system/internal/sheets"
)

// TimeEntry is one clock-in/clock-out record, one row in "Timetracker".
// A nil ClockOut means the entry is open: the employee is clocked in.
type TimeEntry struct {
	ID       string
	UserID   string
	UserName string
	Date     time.Time // calendar day of the clock-in
	ClockIn  time.Time
	ClockOut *time.Time
}

var Columns = sheets.Schema{
	Sheet:   sheets.TimetrackerRange,
	Columns: []string{"id", "userId", "userName", "date", "clockInTime", "clockOutTime"},
}

const (
	DateLayout  = "2006-01-02"
	clockLayout = time.RFC3339
)

func (e TimeEntry) Open() bool {
	return e.ClockOut == nil
}

// Row serializes the entry in declared column order. An open entry emits an
// empty clockOutTime cell so the row always spans all six columns.
func (e TimeEntry) Row() []string {
	clockOut := ""
	if e.ClockOut != nil {
		clockOut = e.ClockOut.Format(clockLayout)
	}
	return []string{
		e.ID,
		e.UserID,
		e.UserName,
		e.Date.Format(DateLayout),
		e.ClockIn.Format(clockLayout),
		clockOut,
	}
}

// EntryFromRow maps a data row to a TimeEntry, failing fast on malformed
// rows instead of propagating zero fields. rowNumber is the 1-based sheet
// row including the header, for error reporting. The Sheets API trims
// trailing empty cells, so an open entry arrives with five columns.
func EntryFromRow(rowNumber int, row []string) (TimeEntry, error) {
	if len(row) < 5 || row[0] == "" {
		return TimeEntry{}, malformedRow(rowNumber, "wrong column count")
	}

	date, err := time.Parse(DateLayout, row[3])
	if err != nil {
		return TimeEntry{}, malformedRow(rowNumber, "unparseable date")
	}
	clockIn, err := time.Parse(clockLayout, row[4])
	if err != nil {
		return TimeEntry{}, malformedRow(rowNumber, "unparseable clockInTime")
	}

	e := TimeEntry{
		ID:       row[0],
		UserID:   row[1],
		UserName: row[2],
		Date:     date,
		ClockIn:  clockIn,
	}

	if len(row) > 5 && row[5] != "" {
		clockOut, err := time.Parse(clockLayout, row[5])
		if err != nil {
			return TimeEntry{}, malformedRow(rowNumber, "unparseable clockOutTime")
		}
		e.ClockOut = &clockOut
	}
	return e, nil
}

func malformedRow(rowNumber int, reason string) error {
	return apperror.New(
		apperror.CodeServiceUnavailable,
		fmt.Sprintf("Malformed row %d in sheet %q: %s", rowNumber, Columns.Sheet, reason),
		http.StatusBadGateway,
	)
}

const entryIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewEntryID returns a 9-character random base36 token. It doubles as the
// upsert key and the only idempotency handle a row carries.
func NewEntryID() string {
	b := make([]byte, 9)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = entryIDAlphabet[int(b[i])%len(entryIDAlphabet)]
	}
	return string(b)
}
