// Copyright 2026 The ArrGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go compute backend for ArrGo arrays.
//
// This is the mandatory default backend: it is present in every build and
// needs no external toolchain. Accelerated backends (SIMD, BLAS) are
// selected explicitly through the backend package and fail loudly when
// unavailable.
package cpu
