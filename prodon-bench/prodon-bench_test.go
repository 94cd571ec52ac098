package main

import "testing"

func TestGetModes(tst *testing.T) {
	*modes = "shared, perrecord ,parallel"
	got := getModes()
	want := []string{"shared", "perrecord", "parallel"}
	if len(got) != len(want) {
		tst.Fatal("Expecting 3 modes, got", got)
	}
	for i, m := range want {
		if got[i] != m {
			tst.Errorf("Mode %d: expecting %q, got %q", i, m, got[i])
		}
	}
}

func TestGetSizes(tst *testing.T) {
	*scale = ""
	*records = 42
	sizes, err := getSizes()
	if err != nil {
		tst.Error("Error:", err)
	}
	if len(sizes) != 1 || sizes[0] != 42 {
		tst.Error("Expecting [42], got", sizes)
	}

	*scale = "10, 100 ,1000"
	sizes, err = getSizes()
	if err != nil {
		tst.Error("Error:", err)
	}
	if len(sizes) != 3 || sizes[0] != 10 || sizes[1] != 100 || sizes[2] != 1000 {
		tst.Error("Expecting [10 100 1000], got", sizes)
	}

	*scale = "ten"
	if _, err = getSizes(); err == nil {
		tst.Error("Expecting an error for a non-numeric size")
	}
}

func TestBenchModeUnknown(tst *testing.T) {
	if _, err := benchMode("fast", nil, nil, 0, 0); err == nil {
		tst.Error("Expecting an error for an unknown mode")
	}
}
