package metrics

// Coverage counts how many skills the synonym table recognized during a run.
type Coverage struct {
	Total    int `json:"total"`
	Mapped   int `json:"mapped"`
	Unmapped int `json:"unmapped"`
}

// Observe records one skill. mapped is false when the canonical form is just
// the normalized input.
func (c *Coverage) Observe(mapped bool) {
	c.Total++
	if mapped {
		c.Mapped++
		return
	}
	c.Unmapped++
}

// Ratio is the share of mapped skills, 0 when nothing was observed.
func (c Coverage) Ratio() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Mapped) / float64(c.Total)
}

// IsZero reports whether nothing was observed.
func (c Coverage) IsZero() bool {
	return c.Total == 0
}
