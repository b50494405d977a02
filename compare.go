package mytex

import "golang.org/x/exp/constraints"

// Go has no operator overloading, so the guard comparisons of the
// original design are expressed as named package-level functions.
// They delegate entirely to the guarded values: two guards compare
// exactly as their dereferenced values do. The optional variants
// follow the option-type convention throughout: two empties are
// equal, and empty sorts strictly below any engaged value or bare
// value.

// Viewer is the read capability shared by Guard and RGuard (and by
// engaged optional guards). It is what lets an exclusive guard be
// compared against a shared one: the comparison functions only need
// to see the values.
type Viewer[T any] interface {
	Get() T
}

// OptViewer is the read capability of OptGuard and OptRGuard. The
// zero OptGuard[T] / OptRGuard[T] is the explicit no-value marker, so
// comparing against "none" is just comparing against the zero value.
type OptViewer[T any] interface {
	HasValue() bool
	Get() T
}

// Equal reports whether two guards hold equal values.
func Equal[T comparable](a, b Viewer[T]) bool { return a.Get() == b.Get() }

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b Viewer[T]) bool { return a.Get() != b.Get() }

// Less reports whether a's value sorts before b's.
func Less[T constraints.Ordered](a, b Viewer[T]) bool { return a.Get() < b.Get() }

// Greater reports whether a's value sorts after b's.
func Greater[T constraints.Ordered](a, b Viewer[T]) bool { return Less(b, a) }

// LessOrEqual reports whether a's value sorts before b's or equals it.
func LessOrEqual[T constraints.Ordered](a, b Viewer[T]) bool { return !Less(b, a) }

// GreaterOrEqual reports whether a's value sorts after b's or equals it.
func GreaterOrEqual[T constraints.Ordered](a, b Viewer[T]) bool { return !Less(a, b) }

// Compare returns -1, 0 or +1 when a's value sorts before, the same
// as, or after b's.
func Compare[T constraints.Ordered](a, b Viewer[T]) int {
	return compareValues(a.Get(), b.Get())
}

// EqualValue reports whether the guard's value equals v.
func EqualValue[T comparable](g Viewer[T], v T) bool { return g.Get() == v }

// NotEqualValue is the negation of EqualValue.
func NotEqualValue[T comparable](g Viewer[T], v T) bool { return g.Get() != v }

// LessValue reports whether the guard's value sorts before v.
func LessValue[T constraints.Ordered](g Viewer[T], v T) bool { return g.Get() < v }

// GreaterValue reports whether the guard's value sorts after v.
func GreaterValue[T constraints.Ordered](g Viewer[T], v T) bool { return v < g.Get() }

// LessOrEqualValue reports whether the guard's value sorts before v
// or equals it.
func LessOrEqualValue[T constraints.Ordered](g Viewer[T], v T) bool { return !(v < g.Get()) }

// GreaterOrEqualValue reports whether the guard's value sorts after v
// or equals it.
func GreaterOrEqualValue[T constraints.Ordered](g Viewer[T], v T) bool { return !(g.Get() < v) }

// CompareValue returns -1, 0 or +1 when the guard's value sorts
// before, the same as, or after v.
func CompareValue[T constraints.Ordered](g Viewer[T], v T) int {
	return compareValues(g.Get(), v)
}

// OptEqual reports whether two optional guards are equal: two empties
// are equal, an empty never equals an engaged guard, and two engaged
// guards compare by value.
func OptEqual[T comparable](a, b OptViewer[T]) bool {
	if !a.HasValue() || !b.HasValue() {
		return a.HasValue() == b.HasValue()
	}
	return a.Get() == b.Get()
}

// OptNotEqual is the negation of OptEqual.
func OptNotEqual[T comparable](a, b OptViewer[T]) bool { return !OptEqual(a, b) }

// OptLess reports whether a sorts before b: empty sorts before any
// engaged guard, two empties are equal (neither less), and two
// engaged guards compare by value.
func OptLess[T constraints.Ordered](a, b OptViewer[T]) bool {
	if !b.HasValue() {
		return false
	}
	if !a.HasValue() {
		return true
	}
	return a.Get() < b.Get()
}

// OptGreater reports whether a sorts after b.
func OptGreater[T constraints.Ordered](a, b OptViewer[T]) bool { return OptLess[T](b, a) }

// OptLessOrEqual reports whether a sorts before b or equals it.
func OptLessOrEqual[T constraints.Ordered](a, b OptViewer[T]) bool { return !OptLess[T](b, a) }

// OptGreaterOrEqual reports whether a sorts after b or equals it.
func OptGreaterOrEqual[T constraints.Ordered](a, b OptViewer[T]) bool { return !OptLess[T](a, b) }

// OptCompare returns -1, 0 or +1 with empty sorting below any engaged
// guard and two empties comparing equal.
func OptCompare[T constraints.Ordered](a, b OptViewer[T]) int {
	switch {
	case !a.HasValue() && !b.HasValue():
		return 0
	case !a.HasValue():
		return -1
	case !b.HasValue():
		return 1
	default:
		return compareValues(a.Get(), b.Get())
	}
}

// OptEqualValue reports whether o is engaged and holds a value equal
// to v. An empty guard never equals a bare value.
func OptEqualValue[T comparable](o OptViewer[T], v T) bool {
	return o.HasValue() && o.Get() == v
}

// OptNotEqualValue is the negation of OptEqualValue.
func OptNotEqualValue[T comparable](o OptViewer[T], v T) bool { return !OptEqualValue(o, v) }

// OptLessValue reports whether o sorts before the bare value v. An
// empty guard sorts before any value.
func OptLessValue[T constraints.Ordered](o OptViewer[T], v T) bool {
	return !o.HasValue() || o.Get() < v
}

// OptGreaterValue reports whether o sorts after the bare value v. An
// empty guard never does.
func OptGreaterValue[T constraints.Ordered](o OptViewer[T], v T) bool {
	return o.HasValue() && v < o.Get()
}

// OptLessOrEqualValue reports whether o sorts before the bare value v
// or equals it.
func OptLessOrEqualValue[T constraints.Ordered](o OptViewer[T], v T) bool {
	return !OptGreaterValue(o, v)
}

// OptGreaterOrEqualValue reports whether o sorts after the bare value
// v or equals it.
func OptGreaterOrEqualValue[T constraints.Ordered](o OptViewer[T], v T) bool {
	return !OptLessValue(o, v)
}

// OptCompareValue returns -1, 0 or +1 comparing o against the bare
// value v, with empty sorting below any value.
func OptCompareValue[T constraints.Ordered](o OptViewer[T], v T) int {
	if !o.HasValue() {
		return -1
	}
	return compareValues(o.Get(), v)
}

func compareValues[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}
