package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lb-dashboard/internal/adapter"
	"github.com/MKhiriev/lb-dashboard/internal/app"
)

var errorStatusMap = map[error]int{
	adapter.ErrFetch: http.StatusBadGateway,
	adapter.ErrParse: http.StatusBadGateway,
}

func statusFromError(err error) int {
	if adapter.IsTimeout(err) {
		return http.StatusGatewayTimeout
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeFetchError answers with the status of err. Load balancer failures
// keep their message; anything else is reported generically.
func writeFetchError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = app.MsgInternalServerError
	}
	http.Error(w, msg, status)
}
