package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrProofRejected error = errors.New("payment proof rejected by facilitator")

// FacilitatorClient verifies payment proofs against an external x402
// facilitator service.
type FacilitatorClient struct {
	url    string
	client *http.Client
}

func NewFacilitatorClient(url string) *FacilitatorClient {
	return &FacilitatorClient{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *FacilitatorClient) Verify(ctx context.Context, proof string, requirement Requirement) error {
	body, err := json.Marshal(map[string]any{
		"paymentPayload":      proof,
		"paymentRequirements": requirement,
	})
	if err != nil {
		return fmt.Errorf("marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/verify", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call facilitator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: facilitator returned %d", ErrProofRejected, resp.StatusCode)
	}

	var verdict struct {
		IsValid bool   `json:"isValid"`
		Reason  string `json:"invalidReason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return fmt.Errorf("decode facilitator response: %w", err)
	}

	if !verdict.IsValid {
		return fmt.Errorf("%w: %s", ErrProofRejected, verdict.Reason)
	}

	return nil
}
