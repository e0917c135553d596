// Copyright 2026 The ArrGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/arrgo-ml/arrgo/array"
	internalcpu "github.com/arrgo-ml/arrgo/internal/backend/cpu"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go implementations of all array
// operations. It is the mandatory default: every build carries it.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements array.Backend.
var _ array.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/arrgo-ml/arrgo/array"
//	    "github.com/arrgo-ml/arrgo/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a := array.Zeros[float64](array.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
