package timeentry

import (
	"context"

	"github.com/ahmedalmoraly/clockin-system/internal/credentials"
	"github.com/ahmedalmoraly/clockin-system/internal/sheets"
)

//go:generate mockgen -source=timeentry_repo.go -destination=mock/timeentry_repo_mock.go -package=mock
type Repository interface {
	ListAll(ctx context.Context) ([]TimeEntry, error)
	ListForUser(ctx context.Context, userID string) ([]TimeEntry, error)
	Upsert(ctx context.Context, entry TimeEntry) error
}

type repository struct {
	client sheets.Client
	creds  credentials.Provider
}

func NewRepository(client sheets.Client, creds credentials.Provider) Repository {
	return &repository{client: client, creds: creds}
}

func (r *repository) ListAll(ctx context.Context) ([]TimeEntry, error) {
	token, err := r.creds.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.client.Get(ctx, token, sheets.TimetrackerRange)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := Columns.ValidateHeader(rows[0]); err != nil {
		return nil, err
	}

	entries := make([]TimeEntry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		e, err := EntryFromRow(i+2, row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *repository) ListForUser(ctx context.Context, userID string) ([]TimeEntry, error) {
	entries, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]TimeEntry, 0, len(entries))
	for _, e := range entries {
		if e.UserID == userID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Upsert appends a row if the entry id is unknown, otherwise overwrites the
// matching row in place. This is a read-modify-write with no isolation: two
// concurrent upserts can both miss and double-append, or race on the same
// row with last-writer-wins. The HTTP layer narrows the window with an
// idempotency key and per-user rate limit, it does not close it.
func (r *repository) Upsert(ctx context.Context, entry TimeEntry) error {
	token, err := r.creds.AccessToken(ctx)
	if err != nil {
		return err
	}

	rows, err := r.client.Get(ctx, token, sheets.TimetrackerRange)
	if err != nil {
		return err
	}

	rowIndex := -1
	for i, row := range rows {
		if len(row) > 0 && row[0] == entry.ID {
			rowIndex = i
			break
		}
	}

	if rowIndex == -1 {
		return r.client.Append(ctx, token, sheets.TimetrackerRange, [][]string{entry.Row()})
	}
	return r.client.Update(ctx, token, Columns.RowRange(rowIndex+1), [][]string{entry.Row()})
}
