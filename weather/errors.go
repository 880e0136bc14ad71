package main

import "errors"

// Error kinds for weather lookups. Callers discriminate with errors.Is; every
// failure returned by the client or the handlers wraps exactly one of these.
var (
	// ErrInvalidArgument means the caller passed an empty or missing city code.
	// No outbound request is made.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransport means the provider could not be reached or answered with a
	// non-2xx HTTP status (timeouts and rate-limit responses included).
	ErrTransport = errors.New("transport failure")

	// ErrProtocol means the provider answered 200 but the body was not the
	// JSON document we expect.
	ErrProtocol = errors.New("protocol failure")

	// ErrUpstream means the provider itself reported a failure (bad status
	// field or no data for the requested city).
	ErrUpstream = errors.New("upstream failure")
)
