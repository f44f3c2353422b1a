package docpath

import (
	"dotdb/internal/value"
)

// Resolve follows segs through nested objects starting at root and returns
// the addressed value. The second return is false when any intermediate
// value is missing or not an object, or when the target segment is absent.
// With no segments, root itself is the result.
func Resolve(root value.Value, segs []string) (value.Value, bool) {
	cur := root
	for _, seg := range segs {
		obj, ok := cur.(value.Object)
		if !ok {
			return nil, false
		}
		next, present := obj[seg]
		if !present {
			return nil, false
		}
		cur = next
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// Write stores v at the location addressed by segs under root and returns
// the new root. Missing intermediate containers are created as empty
// objects; an existing non-object value at an intermediate position is
// overwritten with a fresh object (create-or-coerce, not a failure).
// With no segments, v replaces root wholesale.
func Write(root value.Value, segs []string, v value.Value) value.Value {
	if len(segs) == 0 {
		return v
	}

	obj, ok := root.(value.Object)
	if !ok {
		obj = value.Object{}
	}
	obj[segs[0]] = Write(obj[segs[0]], segs[1:], v)
	return obj
}

// Remove deletes the field addressed by segs under root. It returns the
// (possibly mutated) root and whether a field was actually removed. The
// parent of the final segment must resolve to an object holding it;
// otherwise nothing changes. Removing with no segments is the caller's
// concern (whole-record deletion happens at the adapter).
func Remove(root value.Value, segs []string) (value.Value, bool) {
	if len(segs) == 0 {
		return root, false
	}

	obj, ok := root.(value.Object)
	if !ok {
		return root, false
	}

	if len(segs) == 1 {
		if _, present := obj[segs[0]]; !present {
			return root, false
		}
		delete(obj, segs[0])
		return obj, true
	}

	child, present := obj[segs[0]]
	if !present {
		return root, false
	}
	updated, removed := Remove(child, segs[1:])
	if removed {
		obj[segs[0]] = updated
	}
	return root, removed
}
