package gymstats

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUserIdentityMissing = errors.New("could not identify user")
	ErrBackendUnavailable  = errors.New("backend unavailable, please try again")
	ErrStaleDeleteTarget   = errors.New("log entry no longer exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
)

// WriteError answers a failed operation with the status its error class maps to.
func WriteError(w http.ResponseWriter, op string, err error) {
	status, message := http.StatusInternalServerError, op+" failed"
	switch {
	case errors.Is(err, ErrUserIdentityMissing):
		status, message = http.StatusUnauthorized, ErrUserIdentityMissing.Error()
	case errors.Is(err, ErrStaleDeleteTarget):
		status, message = http.StatusNotFound, ErrStaleDeleteTarget.Error()
	case errors.Is(err, ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, ErrInvalidInput):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrBackendUnavailable):
		status, message = http.StatusServiceUnavailable, ErrBackendUnavailable.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
	} else {
		log.Debugf("%s: %s", op, err)
	}
	http.Error(w, message, status)
}
