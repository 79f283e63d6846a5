package classifier

// Mood is one of the closed set of mental-health categories the trained
// model can predict.
type Mood string

const (
	MoodNormal      Mood = "Normal"
	MoodDepression  Mood = "Depression"
	MoodSuicidal    Mood = "Suicidal"
	MoodAnxiety     Mood = "Anxiety"
	MoodBipolar     Mood = "Bipolar"
	MoodStress      Mood = "Stress"
	MoodPersonality Mood = "Personality disorder"

	// MoodUnknown is the fallback for class indexes the mapping does not cover.
	MoodUnknown Mood = "Unknown"
)

// moodByIndex maps the model's output class indexes to labels.
// The indexes are fixed by the training pipeline and must not be reordered.
var moodByIndex = map[int]Mood{
	0: MoodNormal,
	1: MoodDepression,
	2: MoodSuicidal,
	3: MoodAnxiety,
	4: MoodBipolar,
	5: MoodStress,
	6: MoodPersonality,
}

// MoodFromIndex resolves a model class index to its label. Unmapped indexes
// resolve to MoodUnknown rather than failing.
func MoodFromIndex(i int) Mood {
	if m, ok := moodByIndex[i]; ok {
		return m
	}
	return MoodUnknown
}

// Known reports whether m is a member of the label set (Unknown excluded).
func (m Mood) Known() bool {
	for _, v := range moodByIndex {
		if v == m {
			return true
		}
	}
	return false
}
