package core

import "testing"

func TestColorRGB(t *testing.T) {
	tests := []struct {
		color   Color
		r, g, b uint8
		ok      bool
	}{
		{"#08a", 0x00, 0x88, 0xaa, true},
		{"#3a0", 0x33, 0xaa, 0x00, true},
		{"#ffffff", 0xff, 0xff, 0xff, true},
		{"#102030", 0x10, 0x20, 0x30, true},
		{ColorDefault, 0, 0, 0, false},
		{"08a", 0, 0, 0, false},
		{"#08", 0, 0, 0, false},
		{"#zzz", 0, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.color), func(t *testing.T) {
			r, g, b, ok := tc.color.RGB()
			if ok != tc.ok {
				t.Fatalf("ok = %v, expected %v", ok, tc.ok)
			}
			if r != tc.r || g != tc.g || b != tc.b {
				t.Errorf("RGB() = (%#x, %#x, %#x), expected (%#x, %#x, %#x)", r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}
