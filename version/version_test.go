package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input        string
		wantEpoch    uint64
		wantUpstream string
		wantRevision string
	}{
		{"1.0", 0, "1.0", ""},
		{"1.0-1", 0, "1.0", "1"},
		{"2:1.0-1", 2, "1.0", "1"},
		{"1.0-1-2", 0, "1.0-1", "2"},
		{":1.0", 0, "1.0", ""},
		{"1.0-", 0, "1.0", ""},
		{"3:2.4~rc1-1ubuntu2", 3, "2.4~rc1", "1ubuntu2"},
		{"0:0", 0, "0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if v.Epoch != tt.wantEpoch {
				t.Errorf("epoch = %d, want %d", v.Epoch, tt.wantEpoch)
			}
			if v.Upstream != tt.wantUpstream {
				t.Errorf("upstream = %q, want %q", v.Upstream, tt.wantUpstream)
			}
			if v.Revision != tt.wantRevision {
				t.Errorf("revision = %q, want %q", v.Revision, tt.wantRevision)
			}
		})
	}
}

func TestParseInvalidEpoch(t *testing.T) {
	for _, input := range []string{"a:1.0", "1a:1.0", "-1:1.0"} {
		_, err := Parse(input)
		if err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", input)
		}
		if !errors.Is(err, ErrInvalidEpoch) {
			t.Errorf("Parse(%q) = %v, want ErrInvalidEpoch", input, err)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{Upstream: "1.0"}, "1.0"},
		{Version{Upstream: "1.0", Revision: "1"}, "1.0-1"},
		{Version{Epoch: 2, Upstream: "1.0", Revision: "1"}, "2:1.0-1"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int // sign only
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.1", -1},
		{"1.1", "1.0", 1},
		{"1.0", "1.0.1", -1},
		{"1.2", "1.10", -1},
		{"1.0~rc1", "1.0", -1},
		{"1.0~~", "1.0~", -1},
		{"1.0a", "1.0", 1},
		{"1.0a", "1.0+", -1},
		{"1:1.0", "2:0.5", -1},
		{"1.0-1", "1.0-2", -1},
		{"1.0-1", "1.0-1", 0},
		{"2.4.7-1", "2.4.7-z", -1},
		{"0.1", "00.1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a, err := Parse(tt.a)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.a, err)
			}
			b, err := Parse(tt.b)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.b, err)
			}
			got := Compare(a, b)
			if sign(got) != tt.want {
				t.Errorf("Compare = %d, want sign %d", got, tt.want)
			}
			if sign(Compare(b, a)) != -tt.want {
				t.Errorf("Compare is not antisymmetric for %q, %q", tt.a, tt.b)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
