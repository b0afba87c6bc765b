// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernel

import (
	"fmt"

	"github.com/ajroetker/hwyvec/hwy"
	"github.com/ajroetker/hwyvec/hwy/contrib/shape"
	"github.com/ajroetker/hwyvec/hwy/contrib/workerpool"
)

// foldBatchSize is the number of vectors a worker folds per grab.
const foldBatchSize = 256

func checkLengths(want int, got ...int) error {
	for _, n := range got {
		if n != want {
			return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, n, want)
		}
	}
	return nil
}

// ApplyUnaryBatch sets dst[i] to op applied to a[i] for every i, splitting
// the work across pool. A nil pool runs on the calling goroutine. dst may be
// a.
func ApplyUnaryBatch[V shape.Fixed[T], T hwy.Lanes](pool *workerpool.Pool, op UnaryOp[T], dst, a []V) error {
	if err := checkLengths(len(dst), len(a)); err != nil {
		return err
	}
	k, err := NewUnary[V, T](op)
	if err != nil {
		return err
	}
	pool.ParallelFor(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			k.ApplyTo(&dst[i], &a[i])
		}
	})
	return nil
}

// ApplyBinaryBatch sets dst[i] to op applied to a[i] and b[i] for every i,
// splitting the work across pool. A nil pool runs on the calling goroutine.
// dst may be a or b.
func ApplyBinaryBatch[V shape.Fixed[T], T hwy.Lanes](pool *workerpool.Pool, op BinaryOp[T], dst, a, b []V) error {
	if err := checkLengths(len(dst), len(a), len(b)); err != nil {
		return err
	}
	k, err := NewBinary[V, T](op)
	if err != nil {
		return err
	}
	pool.ParallelFor(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			k.ApplyTo(&dst[i], &a[i], &b[i])
		}
	})
	return nil
}

// FoldUnaryBatch sets dst[i] to the fold of op over a[i] for every i.
func FoldUnaryBatch[V shape.Fixed[T], T hwy.Lanes](pool *workerpool.Pool, op UnaryAggregate[T], dst []T, a []V) error {
	if err := checkLengths(len(dst), len(a)); err != nil {
		return err
	}
	k, err := NewUnaryFold[V, T](op)
	if err != nil {
		return err
	}
	pool.ParallelForBatched(len(dst), foldBatchSize, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = k.Fold(a[i])
		}
	})
	return nil
}

// FoldBinaryBatch sets dst[i] to the fold of op over a[i] and b[i] for
// every i.
func FoldBinaryBatch[V shape.Fixed[T], T hwy.Lanes](pool *workerpool.Pool, op BinaryAggregate[T], dst []T, a, b []V) error {
	if err := checkLengths(len(dst), len(a), len(b)); err != nil {
		return err
	}
	k, err := NewBinaryFold[V, T](op)
	if err != nil {
		return err
	}
	pool.ParallelForBatched(len(dst), foldBatchSize, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = k.Fold(a[i], b[i])
		}
	})
	return nil
}
