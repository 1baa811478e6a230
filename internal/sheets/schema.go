package sheets

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
)

// Schema declares the column layout of a named range once, so reads can
// validate the header row instead of trusting positional convention.
type Schema struct {
	Sheet   string
	Columns []string
}

// ValidateHeader checks the first row of a range against the declared
// columns. Comparison is case-insensitive and ignores surrounding space;
// extra trailing columns in the sheet are tolerated.
func (s Schema) ValidateHeader(header []string) error {
	if len(header) < len(s.Columns) {
		return apperror.New(
			apperror.CodeServiceUnavailable,
			fmt.Sprintf("Sheet %q header has %d columns, expected %d", s.Sheet, len(header), len(s.Columns)),
			http.StatusBadGateway,
		)
	}
	for i, want := range s.Columns {
		got := strings.TrimSpace(header[i])
		if !strings.EqualFold(got, want) {
			return apperror.New(
				apperror.CodeServiceUnavailable,
				fmt.Sprintf("Sheet %q column %d is %q, expected %q", s.Sheet, i+1, got, want),
				http.StatusBadGateway,
			)
		}
	}
	return nil
}

// RowRange addresses one data row across all declared columns, e.g.
// "Timetracker!A3:F3". rowNumber is 1-based and includes the header row.
func (s Schema) RowRange(rowNumber int) string {
	last := rune('A' + len(s.Columns) - 1)
	return fmt.Sprintf("%s!A%d:%c%d", s.Sheet, rowNumber, last, rowNumber)
}
