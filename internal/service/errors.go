package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoAdapterProvided     = errors.New("no load balancer adapter provided")
)
