package skills

// Config holds runtime knobs for the skill matcher.
type Config struct {
	// UseSemantic reserves a semantic matching stage. No such stage exists
	// yet, so enabling it does not change results.
	UseSemantic bool
}
