package mapping

// Object is a decoded JSON object.
type Object = map[string]any

// Extractor pulls a value out of a source object. Returning nil means the
// attribute is absent and must be omitted from the projected output.
type Extractor func(src Object) any

// Field pairs an output attribute with its extractor.
type Field struct {
	Attr string
	Get  Extractor
}

// Table is an ordered projection table.
type Table []Field

// Project builds a new object containing only the attributes whose extractor
// returned a non-nil value. The source is never modified. Output keys are
// always a subset of the table's attributes.
func Project(src Object, table Table) Object {
	out := make(Object, len(table))
	for _, f := range table {
		if v := f.Get(src); v != nil {
			out[f.Attr] = v
		}
	}
	return out
}

// ProjectAll projects every object in the list. Non-object entries are
// skipped.
func ProjectAll(list []any, table Table) []Object {
	out := make([]Object, 0, len(list))
	for _, e := range list {
		if obj, ok := e.(Object); ok {
			out = append(out, Project(obj, table))
		}
	}
	return out
}

// Path returns an extractor that walks the given keys. Any absent
// intermediate node yields nil.
func Path(keys ...string) Extractor {
	return func(src Object) any {
		return Lookup(src, keys...)
	}
}

// Lookup walks keys into a decoded JSON value. It returns nil when the path
// does not fully resolve or an intermediate value is not an object.
func Lookup(src any, keys ...string) any {
	cur := src
	for _, k := range keys {
		obj, ok := cur.(Object)
		if !ok {
			return nil
		}
		cur, ok = obj[k]
		if !ok {
			return nil
		}
	}
	return cur
}

// LookupOr walks keys like Lookup but returns def when the path does not
// resolve.
func LookupOr(def any, src any, keys ...string) any {
	if v := Lookup(src, keys...); v != nil {
		return v
	}
	return def
}

// SliceAt resolves the path to a JSON array. The second return is false when
// the path resolves to something that is not an array; an absent path yields
// (nil, true) so callers can treat missing lists as empty.
func SliceAt(src any, keys ...string) ([]any, bool) {
	v := Lookup(src, keys...)
	if v == nil {
		return nil, true
	}
	list, ok := v.([]any)
	return list, ok
}

// ObjectAt resolves the path to a JSON object, or nil if absent or not an
// object.
func ObjectAt(src any, keys ...string) Object {
	obj, _ := Lookup(src, keys...).(Object)
	return obj
}

// String resolves the path to a string, or "" if absent or not a string.
func String(src any, keys ...string) string {
	s, _ := Lookup(src, keys...).(string)
	return s
}

// Merge copies the entries of extra into dst, overwriting existing keys, and
// returns dst. A nil dst starts a fresh object.
func Merge(dst Object, extra Object) Object {
	if dst == nil {
		dst = make(Object, len(extra))
	}
	for k, v := range extra {
		dst[k] = v
	}
	return dst
}

// Omit returns a copy of src without the given keys.
func Omit(src Object, keys ...string) Object {
	out := make(Object, len(src))
	for k, v := range src {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Pick copies only the given keys from src into a new object. Absent keys
// are skipped, so the result never carries explicit nils for them.
func Pick(src Object, keys ...string) Object {
	out := make(Object, len(keys))
	for _, k := range keys {
		if v, ok := src[k]; ok {
			out[k] = v
		}
	}
	return out
}
