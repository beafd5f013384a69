package metrics

import "testing"

func TestCoverage(t *testing.T) {
	var c Coverage
	if !c.IsZero() || c.Ratio() != 0 {
		t.Fatalf("expected empty coverage")
	}
	c.Observe(true)
	c.Observe(true)
	c.Observe(false)
	c.Observe(true)
	if c.Total != 4 || c.Mapped != 3 || c.Unmapped != 1 {
		t.Fatalf("unexpected counts %+v", c)
	}
	if c.Ratio() != 0.75 {
		t.Fatalf("expected 0.75 got %v", c.Ratio())
	}
}
