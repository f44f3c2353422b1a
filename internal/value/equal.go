package value

// DeepEqual reports whether two values are structurally equal.
//
// Primitives compare by value. Objects compare equal iff they have the
// same key set and every corresponding value is DeepEqual. Arrays compare
// element by element; lengths must match. Mismatched tags (e.g. String vs
// Number) are never equal. Two nil (absent) values compare equal; an
// absent value never equals a present one, including Null.
func DeepEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, elem := range av {
			other, present := bv[k]
			if !present || !DeepEqual(elem, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// PartialMatch reports whether target matches the probe partial.
//
// For object operands, every key in partial must exist in target with a
// DeepEqual value; target may carry additional keys. For anything else the
// predicate degenerates to DeepEqual. Used during array element removal so
// a caller can remove an item by supplying a subset of its fields.
func PartialMatch(target, partial Value) bool {
	po, ok := partial.(Object)
	if !ok {
		return DeepEqual(target, partial)
	}
	to, ok := target.(Object)
	if !ok {
		return false
	}

	for k, want := range po {
		got, present := to[k]
		if !present || !DeepEqual(got, want) {
			return false
		}
	}
	return true
}
