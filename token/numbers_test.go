package token

import (
	"errors"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in    string
		n     int
		float bool
		err   error
	}{
		{in: "0", n: 1},
		{in: "-0", n: 2},
		{in: "24", n: 2},
		{in: "24,", n: 2},
		{in: "-1", n: 2},
		{in: "1.5", n: 3, float: true},
		{in: "1.5]", n: 3, float: true},
		{in: "1e14", n: 4, float: true},
		{in: "1E+14", n: 5, float: true},
		{in: "-1.223959e+2", n: 12, float: true},
		{in: "37.7668}", n: 7, float: true},
		{in: "01", err: ErrNumberLeadingZero},
		{in: "-", err: ErrNumber},
		{in: "-a", err: ErrNumber},
		{in: "1.", err: ErrNumber},
		{in: "1.e3", err: ErrNumber},
		{in: "1e", err: ErrNumber},
		{in: "1e+", err: ErrNumber},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, float, err := number([]byte(tt.in))
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if n != tt.n {
				t.Errorf("got length %d want %d", n, tt.n)
			}
			if float != tt.float {
				t.Errorf("got float %t want %t", float, tt.float)
			}
		})
	}
}
