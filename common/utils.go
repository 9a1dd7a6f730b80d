// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import "fmt"

// Maybe is an explicit optional value. Glossary entries use it for
// attributes which may be entirely absent from the source data
// (origin, plural, pronunciation etc.), where an empty string would
// be indistinguishable from "not set".
type Maybe[T int | string | bool] struct {
	val   T
	empty bool
}

func (m Maybe[T]) String() string {
	if !m.empty {
		return fmt.Sprintf("%v", m.val)
	}
	return ""
}

func (m Maybe[T]) Empty() bool {
	return m.empty
}

func (m Maybe[T]) Value() (T, bool) {
	return m.val, !m.empty
}

func (m Maybe[T]) Apply(fn func(v T)) {
	if !m.empty {
		fn(m.val)
	}
}

func NewMaybe[T int | string | bool](v T) Maybe[T] {
	return Maybe[T]{val: v, empty: false}
}

func NewEmptyMaybe[T int | string | bool]() Maybe[T] {
	return Maybe[T]{empty: true}
}

// MaybeFromPtr wraps a possibly nil pointer (typically coming from
// JSON decoding of an optional attribute) into a Maybe value.
func MaybeFromPtr[T int | string | bool](v *T) Maybe[T] {
	if v == nil {
		return NewEmptyMaybe[T]()
	}
	return NewMaybe(*v)
}

// ----

func MapSlice[T any, U any](items []T, mapFn func(T, int) U) []U {
	ans := make([]U, len(items))
	for i, v := range items {
		ans[i] = mapFn(v, i)
	}
	return ans
}
