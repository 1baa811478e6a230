package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSchema = Schema{
	Sheet:   TimetrackerRange,
	Columns: []string{"id", "userId", "userName", "date", "clockInTime", "clockOutTime"},
}

func TestSchema_ValidateHeader(t *testing.T) {
	err := testSchema.ValidateHeader([]string{"id", "userId", "userName", "date", "clockInTime", "clockOutTime"})
	assert.NoError(t, err)
}

func TestSchema_ValidateHeaderIsLenient(t *testing.T) {
	// Case and surrounding space come from humans editing the sheet.
	err := testSchema.ValidateHeader([]string{" ID ", "USERID", "username", "Date", "ClockInTime", "clockouttime", "notes"})
	assert.NoError(t, err)
}

func TestSchema_ValidateHeaderMismatch(t *testing.T) {
	err := testSchema.ValidateHeader([]string{"id", "employeeId", "userName", "date", "clockInTime", "clockOutTime"})
	assert.Error(t, err)

	err = testSchema.ValidateHeader([]string{"id", "userId"})
	assert.Error(t, err)
}

func TestSchema_RowRange(t *testing.T) {
	assert.Equal(t, "Timetracker!A3:F3", testSchema.RowRange(3))

	employees := Schema{Sheet: EmployeesRange, Columns: []string{"id", "name", "email", "department"}}
	assert.Equal(t, "Employees!A12:D12", employees.RowRange(12))
}
