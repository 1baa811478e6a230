package employee

import (
	"context"

	"github.com/ahmedalmoraly/clockin-system/internal/credentials"
	"github.com/ahmedalmoraly/clockin-system/internal/sheets"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	ListAll(ctx context.Context) ([]Employee, error)
}

type repository struct {
	client sheets.Client
	creds  credentials.Provider
}

func NewRepository(client sheets.Client, creds credentials.Provider) Repository {
	return &repository{client: client, creds: creds}
}

func (r *repository) ListAll(ctx context.Context) ([]Employee, error) {
	token, err := r.creds.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.client.Get(ctx, token, sheets.EmployeesRange)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := Columns.ValidateHeader(rows[0]); err != nil {
		return nil, err
	}

	employees := make([]Employee, 0, len(rows)-1)
	for i, row := range rows[1:] {
		e, err := FromRow(i+2, row)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}
