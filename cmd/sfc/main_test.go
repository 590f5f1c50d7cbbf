package main

import (
	"strings"
	"testing"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts([]string{"0", "-1", "42"})
	if err != nil {
		t.Fatalf("parseInts() failed: %v", err)
	}
	expected := []int{0, -1, 42}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("parseInts()[%d] = %d, expected %d", i, got[i], expected[i])
		}
	}

	if _, err := parseInts([]string{"3", "x"}); err == nil || !strings.Contains(err.Error(), `"x"`) {
		t.Errorf("parseInts() error = %v, expected invalid integer \"x\"", err)
	}
}

func TestBuildCurve(t *testing.T) {
	c, err := buildCurve("moore", 3)
	if err != nil {
		t.Fatalf("buildCurve() failed: %v", err)
	}
	if c.Side() != 8 || !c.Closed() {
		t.Errorf("buildCurve(moore, 3) = side %d closed %v, expected 8 and closed", c.Side(), c.Closed())
	}

	if _, err := buildCurve("peano", 2); err == nil {
		t.Error("buildCurve() with unknown kind should fail")
	}
	if _, err := buildCurve("moore", 1); err == nil {
		t.Error("buildCurve(moore, 1) should fail")
	}
}
