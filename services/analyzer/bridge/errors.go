// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package bridge

import (
	"errors"
	"fmt"
)

// Sentinel errors for worker transport.
var (
	// ErrInvalidInput is returned when a required argument is missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport is returned when a call to the worker fails to
	// complete: connection refused, timeout, or a non-2xx status. It is
	// distinct from an analysis-level parsing failure, which arrives as
	// a normal response.
	ErrTransport = errors.New("worker transport failure")

	// ErrConfigParse is returned when the worker answered a load-config
	// call but could not parse the configuration file.
	ErrConfigParse = errors.New("config not parsable")

	// ErrStartupTimeout is returned when the worker process did not
	// become responsive before the startup deadline.
	ErrStartupTimeout = errors.New("worker did not start in time")
)

// RequestError carries the endpoint and HTTP status for a failed call.
//
// It wraps ErrTransport so callers can match the whole class with
// errors.Is(err, ErrTransport).
type RequestError struct {
	// Endpoint is the worker endpoint that failed, e.g. "/analyze".
	Endpoint string

	// StatusCode is the HTTP status, or 0 if no response arrived.
	StatusCode int

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// newRequestError wraps a call failure in the ErrTransport class.
func newRequestError(endpoint string, status int, err error) *RequestError {
	return &RequestError{
		Endpoint:   endpoint,
		StatusCode: status,
		Err:        fmt.Errorf("%w: %v", ErrTransport, err),
	}
}
