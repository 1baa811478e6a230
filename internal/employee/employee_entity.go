package employee

import (
	"fmt"
	"net/http"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
	"github.com/ahmedalmoraly/clockin-system/internal/sheets"
)

// Employee is one row in the "Employees" range. The directory is managed
// directly in the spreadsheet; this application never writes it.
type Employee struct {
	ID         string
	Name       string
	Email      string
	Department string
}

var Columns = sheets.Schema{
	Sheet:   sheets.EmployeesRange,
	Columns: []string{"id", "name", "email", "department"},
}

// FromRow maps a data row to an Employee. rowNumber is the 1-based sheet row
// (including header) and only used for error reporting. Department may be
// blank; the Sheets API trims trailing empty cells.
func FromRow(rowNumber int, row []string) (Employee, error) {
	if len(row) < 3 || row[0] == "" {
		return Employee{}, apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("Malformed employee row %d in sheet %q", rowNumber, Columns.Sheet),
			http.StatusBadGateway,
		)
	}

	e := Employee{
		ID:    row[0],
		Name:  row[1],
		Email: row[2],
	}
	if len(row) > 3 {
		e.Department = row[3]
	}
	return e, nil
}
