// Copyright 2026 The ArrGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides ArrGo's N-dimensional array type.
//
// # Overview
//
// Array is a fixed-shape, homogeneous numeric container backed by a flat
// row-major buffer. It is the foundational data type beneath every
// higher-level operation in ArrGo: arithmetic, statistics, and the
// structural operations (indexing, views, reshape, transpose).
//
// # Basic Usage
//
//	import (
//	    "github.com/arrgo-ml/arrgo/array"
//	    "github.com/arrgo-ml/arrgo/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, err := array.FromNested[float64]([][]float64{{1, 2}, {3, 4}}, backend)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    b, _ := a.Add(a)       // element-wise, new owning array
//	    t, _ := a.Transpose()  // [[1, 3], [2, 4]]
//	    mean, _ := b.Mean()
//	}
//
// # Views
//
// Partial indexing returns a view: a sub-array aliasing the parent's
// buffer at an accumulated base offset instead of copying. Writes through
// a view are immediately visible through the parent and every sibling
// view, and a view of a view still resolves into the root buffer.
//
//	row, _ := a.View(0)  // shape (2,), aliases the first row
//	_ = row.SetAt(9, 1)  // a is now [[1, 9], [3, 4]]
//
// Reshape, transpose, squeeze and expand-dims never return views; each
// produces a new owning array.
//
// # Supported Element Types
//
// The Scalar constraint admits float64, int64 and bool. Comparisons and
// logical operations produce bool arrays; true division always produces
// float64 and follows IEEE-754 (division by zero yields ±Inf or NaN).
//
// # Errors
//
// Contract violations are reported through sentinel errors (ErrRaggedShape,
// ErrIndexOutOfRange, ErrShapeMismatch, ...) matched with errors.Is. No
// operation leaves an array partially modified: validation precedes every
// write.
//
// # Concurrency
//
// Arrays provide no internal synchronization. Operations are synchronous
// and single-threaded; callers sharing one array across goroutines must
// synchronize externally.
package array
