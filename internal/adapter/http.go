package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/lb-dashboard/internal/config"
	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/internal/utils"
	"github.com/MKhiriev/lb-dashboard/models"
	"github.com/go-resty/resty/v2"
)

// Endpoints of the load balancer control API.
const (
	ConfigEndpoint = "/v1/config"
	InfoEndpoint   = "/v1/info"
)

type httpLoadBalancerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPLoadBalancerAdapter constructs the HTTP/JSON implementation of
// [LoadBalancerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPLoadBalancerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (LoadBalancerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.UserAgent, logger)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Dur("timeout", adapterCfg.RequestTimeout).Msg("load balancer adapter created")

	return &httpLoadBalancerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetConfig implements [LoadBalancerAdapter]. It GETs /v1/config and decodes
// the body into a [models.Config]. A body that is not JSON, or lacks the
// "frontends"/"backends" arrays, yields a [*ParseError].
func (h *httpLoadBalancerAdapter) GetConfig(ctx context.Context) (models.Config, error) {
	body, err := h.get(ctx, ConfigEndpoint)
	if err != nil {
		return models.Config{}, err
	}

	var cfg models.Config
	if err = json.Unmarshal(body, &cfg); err != nil {
		return models.Config{}, &ParseError{Endpoint: ConfigEndpoint, Err: err}
	}

	return cfg, nil
}

// GetInfo implements [LoadBalancerAdapter]. It GETs /v1/info and returns the
// body as a [models.Info] without any transformation. A body that is not a
// JSON object yields a [*ParseError].
func (h *httpLoadBalancerAdapter) GetInfo(ctx context.Context) (models.Info, error) {
	body, err := h.get(ctx, InfoEndpoint)
	if err != nil {
		return nil, err
	}

	var info models.Info
	if err = json.Unmarshal(body, &info); err != nil {
		return nil, &ParseError{Endpoint: InfoEndpoint, Err: err}
	}

	return info, nil
}

func (h *httpLoadBalancerAdapter) get(ctx context.Context, endpoint string) ([]byte, error) {
	resp, err := h.request(ctx).Get(endpoint)
	if err != nil {
		h.logger.Debug().Err(err).Str("endpoint", endpoint).Msg("load balancer request failed")
		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}

	h.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int("size", len(resp.Body())).
		Msg("load balancer responded")

	if err = mapHTTPError(endpoint, resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpLoadBalancerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}
