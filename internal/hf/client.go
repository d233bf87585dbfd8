package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

const defaultBaseURL = "https://api-inference.huggingface.co/models"

// ClassificationClient implements Classifier against the Inference API.
// With no candidate labels it runs a text-classification model (sentiment
// style); with labels it runs the model in zero-shot mode.
type ClassificationClient struct {
	apiKey          string
	model           string
	candidateLabels []string
	baseURL         string
	httpClient      *http.Client
}

// EmbeddingClient implements Embedder against the Inference API.
type EmbeddingClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClassificationClient constructs a classification client.
func NewClassificationClient(apiKey, model string, candidateLabels []string, timeout time.Duration) (*ClassificationClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("HF_CLASSIFIER_MODEL is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ClassificationClient{
		apiKey:          apiKey,
		model:           model,
		candidateLabels: candidateLabels,
		baseURL:         defaultBaseURL,
		httpClient:      &http.Client{Timeout: timeout},
	}, nil
}

// NewEmbeddingClient constructs an embedding client.
func NewEmbeddingClient(apiKey, model string, timeout time.Duration) (*EmbeddingClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("HF_EMBEDDING_MODEL is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &EmbeddingClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type inferenceRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters *inferenceParameters `json:"parameters,omitempty"`
}

type inferenceParameters struct {
	CandidateLabels []string `json:"candidate_labels,omitempty"`
}

type scoredLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type zeroShotResponse struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// Classify sends text to the model and returns label/confidence pairs ordered
// by descending confidence. The caller is expected to pre-truncate text.
func (c *ClassificationClient) Classify(ctx context.Context, text string) ([]Label, error) {
	reqBody := inferenceRequest{Inputs: text}
	if len(c.candidateLabels) > 0 {
		reqBody.Parameters = &inferenceParameters{CandidateLabels: c.candidateLabels}
	}

	body, err := post(ctx, c.httpClient, c.baseURL+"/"+c.model, c.apiKey, reqBody)
	if err != nil {
		return nil, err
	}

	if len(c.candidateLabels) > 0 {
		return parseZeroShot(body)
	}
	return parseClassification(body)
}

// Embed sends text to the model and returns its embedding vector. The caller
// is expected to pre-truncate text.
func (c *EmbeddingClient) Embed(ctx context.Context, text string) ([]float64, error) {
	body, err := post(ctx, c.httpClient, c.baseURL+"/"+c.model, c.apiKey, inferenceRequest{Inputs: text})
	if err != nil {
		return nil, err
	}
	return parseEmbedding(body)
}

func post(ctx context.Context, client *http.Client, url, apiKey string, reqBody inferenceRequest) ([]byte, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("%w: request timeout: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, truncateForError(body))
	}
	return body, nil
}

// parseClassification handles both the nested ([[{label,score}]]) and flat
// ([{label,score}]) shapes the API returns for text-classification models.
func parseClassification(body []byte) ([]Label, error) {
	var nested [][]scoredLabel
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return toLabels(nested[0])
	}

	var flat []scoredLabel
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return toLabels(flat)
	}

	return nil, fmt.Errorf("%w: classification shape: %s", ErrMalformed, truncateForError(body))
}

func parseZeroShot(body []byte) ([]Label, error) {
	var parsed zeroShotResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: zero-shot parse: %v", ErrMalformed, err)
	}
	if len(parsed.Labels) == 0 || len(parsed.Labels) != len(parsed.Scores) {
		return nil, fmt.Errorf("%w: zero-shot labels/scores mismatch", ErrMalformed)
	}
	labels := make([]Label, 0, len(parsed.Labels))
	for i, name := range parsed.Labels {
		labels = append(labels, Label{Name: name, Confidence: parsed.Scores[i]})
	}
	sortByConfidence(labels)
	return labels, nil
}

// parseEmbedding handles both the flat ([x, y, ...]) and nested ([[x, y, ...]])
// vector shapes returned by feature-extraction models.
func parseEmbedding(body []byte) ([]float64, error) {
	var flat []float64
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	var nested [][]float64
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	return nil, fmt.Errorf("%w: embedding shape: %s", ErrMalformed, truncateForError(body))
}

func toLabels(scored []scoredLabel) ([]Label, error) {
	if len(scored) == 0 {
		return nil, fmt.Errorf("%w: empty classification", ErrMalformed)
	}
	labels := make([]Label, 0, len(scored))
	for _, s := range scored {
		labels = append(labels, Label{Name: s.Label, Confidence: s.Score})
	}
	sortByConfidence(labels)
	return labels, nil
}

func sortByConfidence(labels []Label) {
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Confidence > labels[j].Confidence
	})
}

func truncateForError(body []byte) string {
	msg := strings.TrimSpace(string(body))
	const maxLen = 200
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}

var (
	_ Classifier = (*ClassificationClient)(nil)
	_ Embedder   = (*EmbeddingClient)(nil)
)
