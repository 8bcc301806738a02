package build

import "testing"

func TestSemver(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2", "1.2"},
		{"release-v0.4.1-rc1", "v0.4.1"},
		{"(devel)", "(devel)"},
	}
	for _, tt := range tests {
		if got := semver(tt.in); got != tt.want {
			t.Errorf("%q: wanted %q, got %q", tt.in, tt.want, got)
		}
	}
}
