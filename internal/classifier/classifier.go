package classifier

import (
	"context"
	"fmt"
	"strings"
)

// Embedder produces a fixed-length numeric vector for a piece of text.
// For fixed model weights the same text must always produce the same vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Model maps an embedding vector to an integer class index.
type Model interface {
	Predict(ctx context.Context, embedding []float64) (int, error)
}

// Classifier turns raw journal text into a Mood label. It is read-only
// inference: no state is touched on any path.
type Classifier struct {
	embedder Embedder
	model    Model
}

// New creates a Classifier over the given embedding and model capabilities.
func New(embedder Embedder, model Model) *Classifier {
	return &Classifier{
		embedder: embedder,
		model:    model,
	}
}

// Classify embeds text, runs the model, and resolves the class index to a
// Mood. Unmapped indexes come back as MoodUnknown, never as an error.
func (c *Classifier) Classify(ctx context.Context, text string) (Mood, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("classify: text is empty")
	}

	embedding, err := c.embedder.Embed(ctx, text)
	if err != nil {
		return "", fmt.Errorf("embed: %w", err)
	}

	index, err := c.model.Predict(ctx, embedding)
	if err != nil {
		return "", fmt.Errorf("predict: %w", err)
	}

	return MoodFromIndex(index), nil
}
