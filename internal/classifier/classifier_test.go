package classifier

import (
	"context"
	"errors"
	"testing"
)

type fakeEmbedder struct {
	vector []float64
	err    error
	calls  int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	f.calls++
	return f.vector, f.err
}

type fakeModel struct {
	index int
	err   error
	calls int
	got   []float64
}

func (f *fakeModel) Predict(ctx context.Context, embedding []float64) (int, error) {
	f.calls++
	f.got = embedding
	return f.index, f.err
}

func TestClassifyReturnsMappedLabel(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float64{0.1, 0.2, 0.3}}
	model := &fakeModel{index: 3}
	c := New(embedder, model)

	mood, err := c.Classify(context.Background(), "I can't stop worrying about everything")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if mood != MoodAnxiety {
		t.Fatalf("Classify() = %q, want %q", mood, MoodAnxiety)
	}
	if model.got == nil || len(model.got) != 3 {
		t.Fatalf("model did not receive the embedding vector, got %v", model.got)
	}
}

func TestClassifyUnmappedIndexFallsBackToUnknown(t *testing.T) {
	c := New(&fakeEmbedder{vector: []float64{1}}, &fakeModel{index: 42})

	mood, err := c.Classify(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if mood != MoodUnknown {
		t.Fatalf("Classify() = %q, want %q", mood, MoodUnknown)
	}
}

func TestClassifyEmptyTextIsRejected(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float64{1}}
	c := New(embedder, &fakeModel{})

	if _, err := c.Classify(context.Background(), "   "); err == nil {
		t.Fatal("Classify() with blank text should fail")
	}
	if embedder.calls != 0 {
		t.Fatalf("embedder should not be called for blank text, got %d calls", embedder.calls)
	}
}

func TestClassifyPropagatesBackendErrors(t *testing.T) {
	embedErr := errors.New("embedding service down")
	modelErr := errors.New("model service down")

	tests := []struct {
		name     string
		embedder *fakeEmbedder
		model    *fakeModel
		want     error
	}{
		{
			name:     "embed failure",
			embedder: &fakeEmbedder{err: embedErr},
			model:    &fakeModel{},
			want:     embedErr,
		},
		{
			name:     "predict failure",
			embedder: &fakeEmbedder{vector: []float64{1}},
			model:    &fakeModel{err: modelErr},
			want:     modelErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.embedder, tt.model)
			_, err := c.Classify(context.Background(), "text")
			if !errors.Is(err, tt.want) {
				t.Fatalf("Classify() error = %v, want wrapped %v", err, tt.want)
			}
		})
	}
}
