package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VijeshVS/LocalHire-sub001/internal/common"
)

// ErrorObserver lets the metrics collector count error responses by code
// without the response package importing it.
type ErrorObserver interface {
	ObserveError(code string)
}

var errorObserver ErrorObserver

func SetErrorCollector(observer ErrorObserver) {
	errorObserver = observer
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorBody struct {
	Error *common.Error `json:"error"`
}

func Error(w http.ResponseWriter, err error) {
	appErr := asAppError(err)
	if errorObserver != nil {
		errorObserver.ObserveError(string(appErr.Code))
	}
	JSON(w, statusFor(appErr.Code), errorBody{Error: appErr})
}

func asAppError(err error) *common.Error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return common.NewError(common.CodeInternal, "internal server error", err)
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeValidation, common.CodeTooEarly:
		return http.StatusBadRequest
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
