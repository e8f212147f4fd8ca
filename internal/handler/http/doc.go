// Package http implements the read-only dashboard HTTP API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging and panic recovery are
// handled in this package before requests are delegated to the service
// layer. Every request reads fresh documents from the load balancer.
package http
