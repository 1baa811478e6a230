package reporterrors

import (
	"net/http"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
)

var ErrInvalidPeriod = apperror.New(
	apperror.CodeInvalidInput,
	"Year and month must form a valid calendar period",
	http.StatusBadRequest,
)
