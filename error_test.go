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
	"errors"
	"fmt"
	"testing"

	"github.com/thaumaturgia/thaum/internal/assert"
)

func TestErrorFormatting(t *testing.T) {
	t.Parallel()
	assert.Equal(
		t,
		NewError(CodeKeyNotFound, errors.New("")).Error(),
		CodeKeyNotFound.String(),
	)
	got := NewError(CodeKeyNotFound, errors.New("no object")).Error()
	assert.Equal(t, got, "key_not_found: no object")
	assert.Equal(t, NewError(CodeSealed, nil).Error(), "sealed")
}

func TestCodeOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, CodeOf(NewError(CodeTruncated, errors.New("short"))), CodeTruncated)
	wrapped := fmt.Errorf("context: %w", errorf(CodeNullValue, "null"))
	assert.Equal(t, CodeOf(wrapped), CodeNullValue)
	assert.True(t, IsCode(wrapped, CodeNullValue))
	assert.False(t, IsCode(nil, CodeUnknown))
	assert.Equal(t, CodeOf(errors.New("plain")), CodeUnknown)
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()
	base := errors.New("base")
	err := NewError(CodeInvalidValue, base)
	assert.ErrorIs(t, err, base)
	assert.True(t, wrapIfUncoded(err, CodeUnknown) == error(err))
	assert.Equal(t, CodeOf(wrapIfUncoded(base, CodeTruncated)), CodeTruncated)
	assert.Nil(t, wrapIfUncoded(nil, CodeTruncated))
}
