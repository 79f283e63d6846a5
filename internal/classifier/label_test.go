package classifier

import "testing"

func TestMoodFromIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  Mood
	}{
		{name: "normal", index: 0, want: MoodNormal},
		{name: "depression", index: 1, want: MoodDepression},
		{name: "suicidal", index: 2, want: MoodSuicidal},
		{name: "anxiety", index: 3, want: MoodAnxiety},
		{name: "bipolar", index: 4, want: MoodBipolar},
		{name: "stress", index: 5, want: MoodStress},
		{name: "personality disorder", index: 6, want: MoodPersonality},
		{name: "unmapped positive", index: 7, want: MoodUnknown},
		{name: "unmapped large", index: 9999, want: MoodUnknown},
		{name: "negative", index: -1, want: MoodUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodFromIndex(tt.index); got != tt.want {
				t.Fatalf("MoodFromIndex(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestEveryMappedIndexResolvesToKnownMood(t *testing.T) {
	for i := 0; i < 7; i++ {
		mood := MoodFromIndex(i)
		if mood == MoodUnknown {
			t.Fatalf("index %d resolved to Unknown", i)
		}
		if !mood.Known() {
			t.Fatalf("index %d resolved to %q which is not in the label set", i, mood)
		}
	}
}

func TestUnknownIsNotAKnownMood(t *testing.T) {
	if MoodUnknown.Known() {
		t.Fatal("MoodUnknown must not be a member of the label set")
	}
}
