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
	"fmt"
	"strconv"
)

// A Code classifies the failures reported by codecs, fields, and registries.
// There are no user-defined codes, so only the codes enumerated below are
// valid.
type Code uint32

const (
	CodeUnknown           Code = 0  // uncoded error
	CodeMalformedText     Code = 1  // text isn't JSON, or has the wrong shape
	CodeArityMismatch     Code = 2  // tuple array has the wrong length
	CodeNullValue         Code = 3  // required value decoded as null
	CodeTruncated         Code = 4  // binary input ended early or is corrupt
	CodeInvalidValue      Code = 5  // value can't be represented or constructed
	CodeFieldNotFound     Code = 6  // no field with that name
	CodeFieldTypeMismatch Code = 7  // field exists with a different value type
	CodeKeyNotFound       Code = 8  // no registry entry with that key
	CodeDuplicateKey      Code = 9  // registry entry already exists
	CodeDuplicateRegistry Code = 10 // registry location already in use
	CodeSealed            Code = 11 // registry no longer accepts registrations
	CodeInvalidIdentifier Code = 12 // malformed resource location

	minCode Code = CodeUnknown
	maxCode Code = CodeInvalidIdentifier
)

var strToCode = map[string]Code{
	"unknown":             CodeUnknown,
	"malformed_text":      CodeMalformedText,
	"arity_mismatch":      CodeArityMismatch,
	"null_value":          CodeNullValue,
	"truncated":           CodeTruncated,
	"invalid_value":       CodeInvalidValue,
	"field_not_found":     CodeFieldNotFound,
	"field_type_mismatch": CodeFieldTypeMismatch,
	"key_not_found":       CodeKeyNotFound,
	"duplicate_key":       CodeDuplicateKey,
	"duplicate_registry":  CodeDuplicateRegistry,
	"sealed":              CodeSealed,
	"invalid_identifier":  CodeInvalidIdentifier,
}

// MarshalText implements encoding.TextMarshaler. Codes are marshaled in their
// string representations.
func (c Code) MarshalText() ([]byte, error) {
	if c < minCode || c > maxCode {
		return nil, fmt.Errorf("invalid code %d", uint32(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts both the
// string representations produced by MarshalText and numeric codes.
func (c *Code) UnmarshalText(b []byte) error {
	if n, ok := strToCode[string(b)]; ok {
		*c = n
		return nil
	}
	n, err := strconv.ParseUint(string(b), 10 /* base */, 32 /* bitsize */)
	if err != nil {
		return fmt.Errorf("invalid code %q", string(b))
	}
	code := Code(n)
	if code < minCode || code > maxCode {
		return fmt.Errorf("invalid code %v", n)
	}
	*c = code
	return nil
}

func (c Code) String() string {
	switch c {
	case CodeUnknown:
		return "unknown"
	case CodeMalformedText:
		return "malformed_text"
	case CodeArityMismatch:
		return "arity_mismatch"
	case CodeNullValue:
		return "null_value"
	case CodeTruncated:
		return "truncated"
	case CodeInvalidValue:
		return "invalid_value"
	case CodeFieldNotFound:
		return "field_not_found"
	case CodeFieldTypeMismatch:
		return "field_type_mismatch"
	case CodeKeyNotFound:
		return "key_not_found"
	case CodeDuplicateKey:
		return "duplicate_key"
	case CodeDuplicateRegistry:
		return "duplicate_registry"
	case CodeSealed:
		return "sealed"
	case CodeInvalidIdentifier:
		return "invalid_identifier"
	}
	return fmt.Sprintf("code_%d", uint32(c))
}
