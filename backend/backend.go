// Copyright 2026 The ArrGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package backend selects the compute backend for ArrGo arrays.
//
// The backend is chosen once at configuration time and passed to every
// array; arithmetic never probes for faster implementations at run time.
// The pure Go CPU backend is mandatory and always available; accelerated
// backends are explicit opt-ins that fail with ErrUnavailable when the
// build does not carry them.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arrgo-ml/arrgo/array"
	"github.com/arrgo-ml/arrgo/backend/cpu"
)

// Kind identifies a compute backend.
type Kind string

// Available backend kinds.
const (
	// CPU is the pure Go backend, present in every build.
	CPU Kind = "cpu"
	// SIMD is an optional vectorized backend.
	SIMD Kind = "simd"
	// BLAS is an optional backend delegating to a BLAS library.
	BLAS Kind = "blas"
)

// ErrUnavailable reports a recognized backend that this build does not
// carry.
var ErrUnavailable = errors.New("backend not available in this build")

// kinds lists every recognized backend name, for error messages.
var kinds = []Kind{CPU, SIMD, BLAS}

// Default returns the mandatory CPU backend.
func Default() array.Backend {
	return cpu.New()
}

// New returns the backend for the given kind.
//
// Unknown kinds fail with a message listing the valid options; recognized
// but uncompiled kinds fail with ErrUnavailable so callers can distinguish
// a typo from a build limitation.
func New(k Kind) (array.Backend, error) {
	switch k {
	case CPU:
		return cpu.New(), nil
	case SIMD, BLAS:
		return nil, fmt.Errorf("%s: %w", k, ErrUnavailable)
	default:
		return nil, fmt.Errorf("unknown backend %q (valid options: %v)", k, kinds)
	}
}

// FromName resolves a backend by its configured name, case-insensitively.
func FromName(name string) (array.Backend, error) {
	return New(Kind(strings.ToLower(name)))
}
