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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaybeValue(t *testing.T) {
	m := NewMaybe("arcanum")
	v, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, "arcanum", v)
	assert.False(t, m.Empty())
}

func TestEmptyMaybe(t *testing.T) {
	m := NewEmptyMaybe[string]()
	_, ok := m.Value()
	assert.False(t, ok)
	assert.True(t, m.Empty())
	assert.Equal(t, "", m.String())
}

func TestMaybeApply(t *testing.T) {
	applied := false
	NewMaybe("x").Apply(func(v string) { applied = true })
	assert.True(t, applied)

	NewEmptyMaybe[string]().Apply(func(v string) {
		t.Error("Apply must not call the function on an empty value")
	})
}

func TestMaybeFromPtr(t *testing.T) {
	v := "arcanum"
	assert.False(t, MaybeFromPtr(&v).Empty())
	assert.True(t, MaybeFromPtr[string](nil).Empty())
}

func TestMapSlice(t *testing.T) {
	ans := MapSlice([]string{"a", "b"}, func(v string, i int) string {
		return v + "!"
	})
	assert.Equal(t, []string{"a!", "b!"}, ans)
}
