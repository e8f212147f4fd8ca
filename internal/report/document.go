package report

import (
	"time"

	"github.com/MKhiriev/lb-dashboard/models"
)

// Document is the serialisable form of a [models.Dashboard].
type Document struct {
	Config    *models.Config `json:"config"`
	Info      models.Info    `json:"info"`
	Errors    Errors         `json:"errors"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// Errors carries the message of each failed fetch.
type Errors struct {
	Config string `json:"config,omitempty"`
	Info   string `json:"info,omitempty"`
}

// NewDocument converts a dashboard into its serialisable form.
func NewDocument(d models.Dashboard) Document {
	doc := Document{
		Config:    d.Config,
		Info:      d.Info,
		FetchedAt: d.FetchedAt,
	}
	if d.ConfigErr != nil {
		doc.Errors.Config = d.ConfigErr.Error()
	}
	if d.InfoErr != nil {
		doc.Errors.Info = d.InfoErr.Error()
	}
	return doc
}
