package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/rs/zerolog"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("", logger.Nop())

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("", logger.Nop())
	client2 := NewHTTPClient("", logger.Nop())

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_SendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient("lbdash/test", logger.Nop())
	if _, err := client.R().Get(srv.URL); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if got != "lbdash/test" {
		t.Errorf("expected User-Agent 'lbdash/test', got '%s'", got)
	}
}

func TestRestyLogger_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	restyLogger{log}.Warnf("retrying %d", 2)

	out := buf.String()
	if !strings.Contains(out, `"component":"resty"`) || !strings.Contains(out, "retrying 2") {
		t.Errorf("unexpected log output: %s", out)
	}
}
