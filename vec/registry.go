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
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// table is the resolved kernel set of one scalar type, one fully populated
// Ops per shape.
type table[T Scalar] struct {
	ops   [len(shapes)]*Ops[T]
	names [len(shapes)]string
}

// scalarRegistry holds the backends registered for one scalar type and the
// table resolved from them. Resolution happens once, on first use, and again
// after Register or ResetDispatch.
type scalarRegistry[T Scalar] struct {
	mu       sync.Mutex
	backends []*Backend[T]
	resolved atomic.Pointer[table[T]]
}

type resetter interface{ reset() }

var (
	registriesMu sync.Mutex
	// registries holds every registry ever created, so ResetDispatch can
	// reach them all.
	registries []resetter
	// named maps the reflect.Type of a user-defined scalar type to its
	// *scalarRegistry. Lookups after the first take no lock.
	named sync.Map
)

func newRegistry[T Scalar](reference *Backend[T]) *scalarRegistry[T] {
	r := &scalarRegistry[T]{}
	if reference != nil {
		r.backends = append(r.backends, reference)
	}
	track(r)
	return r
}

func track(r resetter) {
	registriesMu.Lock()
	registries = append(registries, r)
	registriesMu.Unlock()
}

// Registries of the built-in scalar types, reached without a map lookup.
var (
	regFloat32 = newRegistry(referenceFloat[float32]())
	regFloat64 = newRegistry(referenceFloat[float64]())
	regInt     = newRegistry(referenceInt[int]())
	regInt8    = newRegistry(referenceInt[int8]())
	regInt16   = newRegistry(referenceInt[int16]())
	regInt32   = newRegistry(referenceInt[int32]())
	regInt64   = newRegistry(referenceInt[int64]())
	regUint    = newRegistry(referenceInt[uint]())
	regUint8   = newRegistry(referenceInt[uint8]())
	regUint16  = newRegistry(referenceInt[uint16]())
	regUint32  = newRegistry(referenceInt[uint32]())
	regUint64  = newRegistry(referenceInt[uint64]())
	regUintptr = newRegistry(referenceInt[uintptr]())
	regBool    = newRegistry(referenceBool[bool]())
)

// registryOf returns the registry of T. User-defined types that were never
// registered get an empty registry, whose every operation reports a missing
// backend.
func registryOf[T Scalar]() *scalarRegistry[T] {
	var zero T
	var r any
	switch any(zero).(type) {
	case float32:
		r = regFloat32
	case float64:
		r = regFloat64
	case int:
		r = regInt
	case int8:
		r = regInt8
	case int16:
		r = regInt16
	case int32:
		r = regInt32
	case int64:
		r = regInt64
	case uint:
		r = regUint
	case uint8:
		r = regUint8
	case uint16:
		r = regUint16
	case uint32:
		r = regUint32
	case uint64:
		r = regUint64
	case uintptr:
		r = regUintptr
	case bool:
		r = regBool
	default:
		return namedRegistry[T]()
	}
	return r.(*scalarRegistry[T])
}

func namedRegistry[T Scalar]() *scalarRegistry[T] {
	key := reflect.TypeFor[T]()
	if r, ok := named.Load(key); ok {
		return r.(*scalarRegistry[T])
	}
	r, loaded := named.LoadOrStore(key, &scalarRegistry[T]{})
	if !loaded {
		track(r.(*scalarRegistry[T]))
	}
	return r.(*scalarRegistry[T])
}

// opsFor returns the resolved kernels of T for shape s.
func opsFor[T Scalar](s Shape) *Ops[T] {
	return registryOf[T]().table().ops[s.index()]
}

func (r *scalarRegistry[T]) table() *table[T] {
	if t := r.resolved.Load(); t != nil {
		return t
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t := r.resolved.Load(); t != nil {
		return t
	}
	t := resolve(r.backends, features())
	r.resolved.Store(t)
	return t
}

func (r *scalarRegistry[T]) add(b *Backend[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends = append(r.backends, b)
	r.resolved.Store(nil)
}

func (r *scalarRegistry[T]) has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.ContainsFunc(r.backends, func(b *Backend[T]) bool { return b.Name == name })
}

func (r *scalarRegistry[T]) reset() {
	r.resolved.Store(nil)
}

// resolve merges the backends supported by f into one table. Backends are
// visited in descending priority; the first to supply a kernel for a shape
// wins. Packed shapes only take kernels from SIMDNone backends. Kernels no
// backend supplies are filled with stubs that panic with MissingBackend.
func resolve[T Scalar](backends []*Backend[T], f cpu.Features) *table[T] {
	ordered := slices.Clone(backends)
	slices.SortStableFunc(ordered, func(a, b *Backend[T]) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	t := &table[T]{}
	for _, s := range shapes {
		o := new(Ops[T])
		var names []string
		for _, b := range ordered {
			if !cpu.Supports(f, b.Level) {
				continue
			}
			if !s.Aligned && b.Level != cpu.SIMDNone {
				continue
			}
			src := b.Shapes[s]
			if src == nil {
				continue
			}
			if mergeOps(o, src) {
				names = append(names, b.Name)
			}
		}
		fillMissing(o, s, len(names) > 0)
		t.ops[s.index()] = o
		t.names[s.index()] = strings.Join(names, "+")
	}
	return t
}

// mergeOps copies every kernel of src into the nil fields of dst and reports
// whether any was taken.
func mergeOps[T Scalar](dst, src *Ops[T]) bool {
	d := reflect.ValueOf(dst).Elem()
	s := reflect.ValueOf(src).Elem()
	took := false
	for i := range d.NumField() {
		if d.Field(i).IsNil() && !s.Field(i).IsNil() {
			d.Field(i).Set(s.Field(i))
			took = true
		}
	}
	return took
}

func fillMissing[T Scalar](o *Ops[T], s Shape, served bool) {
	v := reflect.ValueOf(o).Elem()
	typ := v.Type()
	for i := range v.NumField() {
		f := v.Field(i)
		if !f.IsNil() {
			continue
		}
		err := missingBackendError[T](typ.Field(i).Name, s, served)
		f.Set(reflect.MakeFunc(f.Type(), func([]reflect.Value) []reflect.Value {
			panic(err)
		}))
	}
}

// missingBackendError describes an operation no backend supplies. served
// reports whether other operations of the shape are available, which means
// the operation is outside the scalar class rather than unregistered.
func missingBackendError[T Scalar](op string, s Shape, served bool) *Error {
	detail := fmt.Sprintf("no registered backend provides %s for %s; "+
		"register one with vec.Register, or the reference kernels with "+
		"vec.RegisterFloat, vec.RegisterSigned, vec.RegisterUnsigned or vec.RegisterBool",
		op, scalarName[T]())
	if served {
		detail = fmt.Sprintf("%s is not defined for the scalar class of %s", op, scalarName[T]())
	}
	return &Error{
		Kind:   MissingBackend,
		Op:     op,
		Triple: tripleName[T](s),
		Lane:   -1,
		Detail: detail,
	}
}

func scalarName[T Scalar]() string {
	return reflect.TypeFor[T]().String()
}

func tripleName[T Scalar](s Shape) string {
	align := "Packed"
	if s.Aligned {
		align = "Aligned"
	}
	return fmt.Sprintf("(%s, %d, %s)", scalarName[T](), s.N, align)
}

// Register adds a backend for T. The next operation on T re-resolves its
// kernels, so registration should complete before vectors of T are used
// concurrently.
func Register[T Scalar](b *Backend[T]) {
	if b == nil {
		panic("vec: Register called with a nil backend")
	}
	registryOf[T]().add(b)
}

// RegisterFloat installs the reference floating-point kernels for a
// user-defined float type. Built-in float32 and float64 are registered
// already; repeated calls are no-ops.
func RegisterFloat[T Floats]() {
	registerReference(referenceFloat[T])
}

// RegisterSigned installs the reference signed-integer kernels for T.
func RegisterSigned[T SignedInts]() {
	registerReference(referenceInt[T])
}

// RegisterUnsigned installs the reference unsigned-integer kernels for T.
func RegisterUnsigned[T UnsignedInts]() {
	registerReference(referenceInt[T])
}

// RegisterBool installs the reference boolean kernels for T.
func RegisterBool[T ~bool]() {
	registerReference(referenceBool[T])
}

func registerReference[T Scalar](build func() *Backend[T]) {
	r := registryOf[T]()
	if r.has(referenceName) {
		return
	}
	r.add(build())
}

// BackendName returns the names of the backends serving T for the (L, A)
// shape, highest priority first, joined by "+".
func BackendName[T Scalar, L Length, A Alignment]() string {
	s := ShapeOf[L, A]()
	return registryOf[T]().table().names[s.index()]
}

// ResetDispatch drops every resolved kernel table, so the next operation
// selects backends against the current CPU features. Tests use it together
// with cpu.SetForcedFeatures.
func ResetDispatch() {
	registriesMu.Lock()
	defer registriesMu.Unlock()
	for _, r := range registries {
		r.reset()
	}
}
