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

package vec

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-smallvec/internal/testutil"
)

// requirePanicKind fails t unless f panics with an *Error of the given kind,
// and returns that error.
func requirePanicKind(t *testing.T, kind ErrorKind, f func()) *Error {
	t.Helper()
	r := testutil.Recover(f)
	if r == nil {
		t.Fatalf("expected a %v panic, got none", kind)
	}
	err, ok := r.(error)
	if !ok {
		t.Fatalf("expected a %v panic, got %v", kind, r)
	}
	var e *Error
	if !errors.As(err, &e) || e.Kind != kind {
		t.Fatalf("expected a %v panic, got %v", kind, err)
	}
	return e
}

// requireNoPanic fails t if f panics.
func requireNoPanic(t *testing.T, name string, f func()) {
	t.Helper()
	if r := testutil.Recover(f); r != nil {
		t.Fatalf("%s: unexpected panic: %v", name, r)
	}
}
