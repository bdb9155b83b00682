package dex

// Species holds the flavor-level data for a Pokémon species, keyed by the
// same ID as the Pokémon itself. Immutable once cached.
type Species struct {
	ID               int
	Name             string
	DisplayName      string
	Genus            string
	FlavorText       string
	CaptureRate      int
	GenderRate       int
	Legendary        bool
	Mythical         bool
	EvolutionChainID int
}

// CaptureTier buckets the 0-255 capture rate for display.
type CaptureTier string

// Capture difficulty tiers.
const (
	CaptureTierVeryEasy CaptureTier = "very easy"
	CaptureTierEasy     CaptureTier = "easy"
	CaptureTierMedium   CaptureTier = "medium"
	CaptureTierHard     CaptureTier = "hard"
	CaptureTierVeryHard CaptureTier = "very hard"
)

// CaptureTierOf derives the display tier from the capture rate. Pure
// function of the stored rate; never persisted.
func (s Species) CaptureTierOf() CaptureTier {
	switch {
	case s.CaptureRate >= 200:
		return CaptureTierVeryEasy
	case s.CaptureRate >= 120:
		return CaptureTierEasy
	case s.CaptureRate >= 60:
		return CaptureTierMedium
	case s.CaptureRate >= 20:
		return CaptureTierHard
	default:
		return CaptureTierVeryHard
	}
}

// GenderSplit expresses the species gender distribution.
type GenderSplit struct {
	Genderless    bool
	FemalePercent float64
	MalePercent   float64
}

// GenderSplitOf derives the gender distribution from the wire gender rate,
// which counts female chances in eighths, with -1 meaning genderless.
func (s Species) GenderSplitOf() GenderSplit {
	if s.GenderRate < 0 {
		return GenderSplit{Genderless: true}
	}
	female := float64(s.GenderRate) * 12.5
	return GenderSplit{
		FemalePercent: female,
		MalePercent:   100 - female,
	}
}
