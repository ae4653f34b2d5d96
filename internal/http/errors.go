package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/edinfinite/platform-api/internal/errors"
)

// statusLocked follows RFC 4918; it is the one status the taxonomy needs
// that net/http names WebDAV-ish.
const statusLocked = http.StatusLocked

// statusForCode maps the error taxonomy onto HTTP statuses. This is the
// single place the mapping lives; handlers never pick statuses themselves.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidCredentials, apperrors.ErrCodeUnauthenticated:
		return http.StatusUnauthorized
	case apperrors.ErrCodeAccountLocked:
		return statusLocked
	case apperrors.ErrCodeCSRF, apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeValidation, apperrors.ErrCodeForeignKey:
		return http.StatusBadRequest
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteAppError renders a service error as JSON. Unrecognized errors become
// an opaque 500; their detail goes to the log, not the client.
func WriteAppError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		WriteError(w, ErrorParams{
			Code:    statusForCode(appErr.Code),
			ErrCode: string(appErr.Code),
			Err:     errors.New(appErr.Message),
		})
		return
	}
	if logger != nil {
		logger.Error("unhandled error", slog.Any("error", err))
	}
	WriteError(w, ErrorParams{
		Code:    http.StatusInternalServerError,
		ErrCode: string(apperrors.ErrCodeInternal),
		Err:     errors.New("internal server error"),
	})
}
