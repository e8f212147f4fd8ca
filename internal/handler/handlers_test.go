package handler

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/lb-dashboard/internal/config"
	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_HTTPAddress verifies that an HTTP address enables the HTTP
// handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(nil, http.NotFoundHandler(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that an empty configuration is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, nil, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
