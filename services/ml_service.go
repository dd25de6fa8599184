package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MLService is the HTTP client for the external prediction microservice. The
// contract is loosely typed: the predict endpoint sometimes returns a bare
// array of product IDs and sometimes a richer object, so decoding is
// defensive on purpose. No retries and no breaker; a failed call is reported
// to the caller, which degrades to a default payload.
type MLService struct {
	baseURL string
	client  *http.Client
}

func NewMLService(baseURL string, timeout time.Duration) *MLService {
	return &MLService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type Prediction struct {
	ProductIDs   []uint
	Confidence   float64
	Source       string
	ModelVersion string
	GeneratedAt  time.Time
}

type predictRequest struct {
	UserID uint `json:"user_id"`
}

type predictResponse struct {
	Products     []uint  `json:"products"`
	Confidence   float64 `json:"confidence"`
	Source       string  `json:"source"`
	ModelVersion string  `json:"model_version"`
}

// Predict asks the model for the user's next basket.
func (m *MLService) Predict(ctx context.Context, userID uint) (*Prediction, error) {
	body, err := json.Marshal(predictRequest{UserID: userID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.baseURL+"/api/v1/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml service returned status %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	p := &Prediction{
		Source:      "ml-service",
		GeneratedAt: time.Now(),
	}

	// Bare array shape: [42, 7, 13]
	var ids []uint
	if err := json.Unmarshal(raw, &ids); err == nil {
		p.ProductIDs = ids
		return p, nil
	}

	// Object shape: {"products": [...], "confidence": ..., ...}
	var obj predictResponse
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("ml service returned unrecognized payload: %w", err)
	}
	p.ProductIDs = obj.Products
	p.Confidence = obj.Confidence
	if obj.Source != "" {
		p.Source = obj.Source
	}
	p.ModelVersion = obj.ModelVersion
	return p, nil
}

type ModelMetrics struct {
	PrecisionAtK float64 `json:"precision_at_k"`
	RecallAtK    float64 `json:"recall_at_k"`
	F1Score      float64 `json:"f1_score"`
	NDCG         float64 `json:"ndcg"`
}

func (m *MLService) EvaluateModel(ctx context.Context) (*ModelMetrics, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		m.baseURL+"/api/v1/metrics", nil)
	if err != nil {
		return nil, err
	}

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml service returned status %d", res.StatusCode)
	}

	var metrics ModelMetrics
	if err := json.NewDecoder(res.Body).Decode(&metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

type DemoProduct struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type DemoOrder struct {
	DaysSincePrior int           `json:"days_since_prior"`
	Products       []DemoProduct `json:"products"`
}

// FetchDemoHistory pulls an external dataset identity's historical orders.
// A 404 from the data source maps to ErrExternalUserNotFound so the admin
// controller can attach suggestions.
func (m *MLService) FetchDemoHistory(ctx context.Context, externalID int64) ([]DemoOrder, error) {
	url := fmt.Sprintf("%s/api/v1/demo/users/%d/orders", m.baseURL, externalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrExternalUserNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml service returned status %d", res.StatusCode)
	}

	var orders []DemoOrder
	if err := json.NewDecoder(res.Body).Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// SampleDemoIDs lists known dataset identities, used as suggestions when a
// requested external ID does not exist.
func (m *MLService) SampleDemoIDs(ctx context.Context) ([]int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		m.baseURL+"/api/v1/demo/users/sample", nil)
	if err != nil {
		return nil, err
	}

	res, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml service returned status %d", res.StatusCode)
	}

	var ids []int64
	if err := json.NewDecoder(res.Body).Decode(&ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Healthy reports whether the service answers its health endpoint.
func (m *MLService) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	res, err := m.client.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}
