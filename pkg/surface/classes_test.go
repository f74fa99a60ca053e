package surface

import "testing"

func TestMarkerClass(t *testing.T) {
	cases := []struct {
		marker Marker
		class  ChromeClass
		ok     bool
	}{
		{MarkerValid, ClassValid, true},
		{MarkerInvalid, ClassInvalid, true},
		{MarkerNeutral, "", false},
	}

	for _, tc := range cases {
		got, ok := MarkerClass(tc.marker)
		if got != tc.class || ok != tc.ok {
			t.Fatalf("MarkerClass(%q) = (%q, %v), want (%q, %v)", tc.marker, got, ok, tc.class, tc.ok)
		}
	}
}
