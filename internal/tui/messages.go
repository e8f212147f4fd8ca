package tui

import (
	"time"

	"github.com/MKhiriev/lb-dashboard/models"
)

type dashboardLoadedMsg struct {
	dashboard models.Dashboard
}

type refreshTickMsg time.Time
