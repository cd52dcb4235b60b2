package gcd_test

import (
	"testing"

	"github.com/alextanhongpin/gcd"
	"github.com/alextanhongpin/gcd/internal"
	"github.com/google/go-cmp/cmp"
)

func TestOf(t *testing.T) {
	inputs := [][]uint64{
		{},
		{0},
		{7},
		{0, 0},
		{1, 2, 3, 4, 5},
		{5, 10, 25, 100},
		{3, 7, 11},
		{12, 18, 0, 24},
		{1 << 40, 3 << 38, 5 << 39},
	}

	want := make([]uint64, len(inputs))
	got := make([]uint64, len(inputs))
	for i, in := range inputs {
		want[i] = internal.GCD(in...)
		got[i] = gcd.Of(in...)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Of() mismatch (-want +got):\n%s", diff)
	}
}
