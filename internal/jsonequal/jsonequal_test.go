package jsonequal

import "testing"

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b interface{}
		want bool
	}{
		{"numeric value equality", 1.0, 1.0, true},
		{"int vs float64 equality", 1, 1.0, true},
		{"int vs float64 inequality", 1, 1.5, false},
		{"nulls", nil, nil, true},
		{"null vs zero", nil, 0.0, false},
		{"strings", "a", "a", true},
		{"strings differ", "a", "b", false},
		{"arrays elementwise", []interface{}{1.0, 2.0}, []interface{}{1.0, 2.0}, true},
		{"arrays order matters", []interface{}{1.0, 2.0}, []interface{}{2.0, 1.0}, false},
		{
			"objects ignore key order",
			map[string]interface{}{"a": 1.0, "b": 2.0},
			map[string]interface{}{"b": 2.0, "a": 1.0},
			true,
		},
		{
			"objects differ in size",
			map[string]interface{}{"a": 1.0},
			map[string]interface{}{"a": 1.0, "b": 2.0},
			false,
		},
		{
			"nested structures",
			map[string]interface{}{"a": []interface{}{1.0, map[string]interface{}{"x": "y"}}},
			map[string]interface{}{"a": []interface{}{1.0, map[string]interface{}{"x": "y"}}},
			true,
		},
		{"type mismatch", "1", 1.0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.want {
				t.Errorf("Equal(%#v, %#v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
