package convert

import (
	"errors"
	"testing"
)

func TestRaw(t *testing.T) {
	r := Raw{
		"name":  "Aspirin",
		"count": float64(3),
		"flag":  true,
		"inner": map[string]any{"k": "v"},
		"items": []any{map[string]any{"id": "1"}, map[string]any{"id": "2"}},
		"tags":  []any{"a", "b"},
	}

	s, err := r.String("name")
	if err != nil || s != "Aspirin" {
		t.Errorf("String(name) = (%q, %v)", s, err)
	}
	if _, err := r.String("missing"); !errors.Is(err, ErrMissingField) {
		t.Errorf("String(missing) err = %v, want ErrMissingField", err)
	}
	if _, err := r.String("flag"); !errors.Is(err, ErrMissingField) {
		t.Errorf("String(flag) err = %v, want ErrMissingField for non-string", err)
	}

	if n := r.OptInt("count"); n == nil || *n != 3 {
		t.Errorf("OptInt(count) = %v", n)
	}
	if n := r.OptInt("name"); n != nil {
		t.Errorf("OptInt(name) = %v, want nil", n)
	}
	if b := r.OptBool("flag"); b == nil || !*b {
		t.Errorf("OptBool(flag) = %v", b)
	}

	inner, ok := r.Object("inner")
	if !ok || inner["k"] != "v" {
		t.Errorf("Object(inner) = (%v, %v)", inner, ok)
	}
	items, ok := r.List("items")
	if !ok || len(items) != 2 {
		t.Errorf("List(items) = (%v, %v)", items, ok)
	}
	tags, ok := r.Strings("tags")
	if !ok || len(tags) != 2 || tags[0] != "a" {
		t.Errorf("Strings(tags) = (%v, %v)", tags, ok)
	}
}
