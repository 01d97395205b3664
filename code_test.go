// Copyright 2021-2022 Buf Technologies, Inc.
// Copyright 2025 The Thaumaturgia Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package thaum

import (
	"strings"
	"testing"

	"github.com/thaumaturgia/thaum/internal/assert"
)

func TestCodeMarshaling(t *testing.T) {
	t.Parallel()
	var valid []Code
	for code := minCode; code <= maxCode; code++ {
		valid = append(valid, code)
	}

	t.Run("round-trip", func(t *testing.T) {
		t.Parallel()
		for _, code := range valid {
			text, err := code.MarshalText()
			assert.Nil(t, err, assert.Sprintf("marshal code %v", code))
			var in Code
			assert.Nil(t, in.UnmarshalText(text))
			assert.Equal(t, in, code)
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()
		const tooBig = maxCode + 1
		_, err := Code(tooBig).MarshalText()
		assert.NotNil(t, err)
		assert.Equal(t, Code(tooBig).String(), "code_13")
		var code Code
		assert.NotNil(t, code.UnmarshalText([]byte("999")))
		assert.NotNil(t, code.UnmarshalText([]byte("foobar")))
	})

	t.Run("from number", func(t *testing.T) {
		t.Parallel()
		var code Code
		assert.Nil(t, code.UnmarshalText([]byte("2")))
		assert.Equal(t, code, CodeArityMismatch)
	})

	t.Run("to string", func(t *testing.T) {
		t.Parallel()
		// Ensures that we don't forget to update the mapping in the Stringer
		// implementation.
		for _, code := range valid {
			assert.False(
				t,
				strings.HasPrefix(code.String(), "code_"),
				assert.Sprintf("update Code.String() method for %d", uint32(code)),
			)
		}
	})
}
