package convert

import (
	"reflect"
	"testing"
)

func TestSplitCompound(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"ORAL", []string{"ORAL"}},
		{"ORAL, TOPICAL", []string{"ORAL", "TOPICAL"}},
		{"ORAL, TOPICAL, RECTAL", []string{"ORAL", "TOPICAL", "RECTAL"}},
		// Release qualifiers keep their comma.
		{"CAPSULE, DELAYED RELEASE", []string{"CAPSULE, DELAYED RELEASE"}},
		{"TABLET, EXTENDED RELEASE", []string{"TABLET, EXTENDED RELEASE"}},
		{"ORAL, CAPSULE, DELAYED RELEASE", []string{"ORAL", "CAPSULE, DELAYED RELEASE"}},
		// Comma without a following space is not a separator.
		{"A,B", []string{"A,B"}},
		{"", []string{""}},
	}
	for _, c := range cases {
		if got := SplitCompound(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitCompound(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
