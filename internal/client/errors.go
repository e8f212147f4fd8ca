package client

import "errors"

var (
	ErrNoConfigProvided = errors.New("no config provided")
	ErrConfigFetch      = errors.New("load balancer config could not be fetched")
)
