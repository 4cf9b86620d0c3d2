package game

// AssessmentConfig is the "Phoneme Bubbles" assessment: pop bubbles labelled
// with consonant-vowel phonemes
func AssessmentConfig() Config {
	return Config{
		TestType:    "Phoneme Popper Game",
		DurationSec: 15,
		Labels:      []string{"ba", "da", "pa", "ma", "ka"},
		Area:        Bounds{XMin: 10, XMax: 90, YMin: 10, YMax: 90},
	}
}

// ScreeningConfig is the "Star Tracker" visual-focus screening: catch the
// star as it jumps around. The area keeps the star clear of the HUD.
func ScreeningConfig() Config {
	return Config{
		TestType:    "Star Tracker",
		DurationSec: 15,
		Labels:      []string{"*"},
		Area:        Bounds{XMin: 15, XMax: 85, YMin: 20, YMax: 80},
	}
}
