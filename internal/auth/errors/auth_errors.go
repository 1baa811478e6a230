package autherrors

import (
	"net/http"

	"github.com/ahmedalmoraly/clockin-system/internal/shared/apperror"
)

var (
	// ErrNoCredentials is returned before any remote call when the request
	// carries no usable session token.
	ErrNoCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"No spreadsheet credentials for this session, please sign in again",
		http.StatusUnauthorized,
	)
	// ErrTokenRejected maps a 401/403 from the spreadsheet service.
	ErrTokenRejected = apperror.New(
		apperror.CodeUnauthorized,
		"Spreadsheet access token was rejected, please sign in again",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid access token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Access token has expired",
		http.StatusUnauthorized,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Session not found or expired",
		http.StatusUnauthorized,
	)
	ErrCodeExchangeFailed = apperror.New(
		apperror.CodeUnauthorized,
		"Authorization code exchange failed",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate access token",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.ErrForbidden
)
