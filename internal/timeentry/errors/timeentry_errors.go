package timeentryerrors

import (
	"net/http"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
)

var (
	ErrNoOpenEntry = apperror.New(
		apperror.CodeInvalidState,
		"No open time entry found for clock-out",
		http.StatusConflict,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Employee already has an open time entry",
		http.StatusConflict,
	)
)
