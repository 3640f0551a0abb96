package convert

import "fmt"

// Raw is one decoded JSON object from an API response. Record assemblers read
// known keys from it; accessors distinguish mandatory keys (error when
// absent) from optional ones (ok=false when absent).
type Raw map[string]any

// String reads a mandatory string field. An absent key or a non-string value
// is a structural error: the output record's invariants cannot be satisfied.
func (r Raw) String(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, not string", ErrMissingField, key, v)
	}
	return s, nil
}

// OptString reads an optional string field.
func (r Raw) OptString(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// OptBool reads an optional JSON boolean field.
func (r Raw) OptBool(key string) *bool {
	b, ok := r[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

// OptInt reads an optional JSON number field, truncating to int.
func (r Raw) OptInt(key string) *int {
	switch v := r[key].(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		return &v
	}
	return nil
}

// Object reads an optional nested object.
func (r Raw) Object(key string) (Raw, bool) {
	m, ok := r[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Raw(m), true
}

// List reads an optional list of nested objects.
func (r Raw) List(key string) ([]Raw, bool) {
	l, ok := r[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]Raw, 0, len(l))
	for _, elem := range l {
		if m, ok := elem.(map[string]any); ok {
			out = append(out, Raw(m))
		}
	}
	return out, true
}

// Strings reads an optional list of strings, skipping non-string elements.
func (r Raw) Strings(key string) ([]string, bool) {
	l, ok := r[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(l))
	for _, elem := range l {
		if s, ok := elem.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
