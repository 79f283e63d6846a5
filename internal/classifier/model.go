package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// InferenceClient is a client for the mood model serving API. The service
// holds the trained decision model and maps embedding vectors to class
// indexes.
type InferenceClient struct {
	baseURL    string
	httpClient *http.Client
}

// PredictRequest carries one embedding vector to classify.
type PredictRequest struct {
	Embedding []float64 `json:"embedding"`
}

// PredictResponse is the model's answer for one vector.
type PredictResponse struct {
	ClassIndex int     `json:"class_index"`
	Confidence float64 `json:"confidence,omitempty"`
}

// HealthResponse reports whether the serving process has its model loaded.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Message     string `json:"message,omitempty"`
}

// NewInferenceClient creates a client for the model service at baseURL.
func NewInferenceClient(baseURL string) *InferenceClient {
	return &InferenceClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Predict sends an embedding vector to the model service and returns the
// predicted class index.
func (c *InferenceClient) Predict(ctx context.Context, embedding []float64) (int, error) {
	jsonData, err := json.Marshal(PredictRequest{Embedding: embedding})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/predict", bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("model service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.ClassIndex, nil
}

// HealthCheck verifies the model service is reachable and has its model
// loaded. Called once at startup so a missing model keeps the server from
// accepting traffic instead of surfacing per-request.
func (c *InferenceClient) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("model service returned status %d: %s", resp.StatusCode, string(body))
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.ModelLoaded {
		return &result, fmt.Errorf("model service is up but no model is loaded: %s", result.Message)
	}

	return &result, nil
}
