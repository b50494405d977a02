package mytex

import "errors"

// ErrNoValue is returned by the checked accessors of OptGuard and
// OptRGuard when the optional guard is empty, i.e. when the
// non-blocking acquisition that produced it did not get the lock.
var ErrNoValue = errors.New("mytex: optional guard has no value")

// OptGuard is a possibly-empty Guard, returned by TryLock. The zero
// value is the empty ("no value") marker; an engaged OptGuard behaves
// exactly like the Guard it wraps.
//
// Unlock on an empty OptGuard is a no-op, so it is always safe to
// write:
//
//	g := m.TryLock()
//	defer g.Unlock()
//	if g.HasValue() { ... }
type OptGuard[T any] struct {
	g *Guard[T]
}

// HasValue reports whether the guard is engaged, i.e. whether the
// acquisition attempt succeeded.
func (o OptGuard[T]) HasValue() bool { return o.g != nil }

// Value returns a reference to the guarded value, or ErrNoValue if
// the guard is empty.
func (o OptGuard[T]) Value() (*T, error) {
	if o.g == nil {
		return nil, ErrNoValue
	}
	return o.g.val, nil
}

// Ref returns a direct reference to the guarded value without
// checking engagement. On an empty guard it returns nil; what the
// caller does with that is the caller's problem, mirroring Guard's
// no-check policy.
func (o OptGuard[T]) Ref() *T {
	if o.g == nil {
		return nil
	}
	return o.g.val
}

// Get returns the guarded value. Unchecked: calling it on an empty
// guard panics.
func (o OptGuard[T]) Get() T { return *o.g.val }

// Set replaces the guarded value. Unchecked, like Get.
func (o OptGuard[T]) Set(v T) { *o.g.val = v }

// Unlock releases the hold if the guard is engaged, and does nothing
// if it is empty. Unlocking an engaged guard twice panics.
func (o OptGuard[T]) Unlock() {
	if o.g != nil {
		o.g.Unlock()
	}
}

// OptRGuard is a possibly-empty RGuard, returned by TryRLock. The
// zero value is the empty marker. Like RGuard, it grants read-only
// access only.
type OptRGuard[T any] struct {
	g *RGuard[T]
}

// HasValue reports whether the guard is engaged.
func (o OptRGuard[T]) HasValue() bool { return o.g != nil }

// Value returns the guarded value, or the zero T and ErrNoValue if
// the guard is empty.
func (o OptRGuard[T]) Value() (T, error) {
	if o.g == nil {
		var zero T
		return zero, ErrNoValue
	}
	return *o.g.val, nil
}

// Get returns the guarded value. Unchecked: calling it on an empty
// guard panics.
func (o OptRGuard[T]) Get() T { return *o.g.val }

// Unlock releases the shared hold if engaged; no-op when empty.
func (o OptRGuard[T]) Unlock() {
	if o.g != nil {
		o.g.Unlock()
	}
}
