package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// PaymentHeader carries the payment proof produced by the client's
// wallet through the paywall facilitator.
const PaymentHeader = "X-Payment"

// Requirement describes the payment a gated route demands. The shape
// follows the x402 paywall configuration.
type Requirement struct {
	Network           string `json:"network"`
	Asset             string `json:"asset"`
	MaxAmountRequired string `json:"maxAmountRequired"`
	Description       string `json:"description"`
	MimeType          string `json:"mimeType"`
	MaxTimeoutSeconds int    `json:"maxTimeoutSeconds"`
	PayTo             string `json:"payTo"`
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ProofVerifier . ProofVerifier
type ProofVerifier interface {
	Verify(ctx context.Context, proof string, requirement Requirement) error
}

// PaywallMiddleware gates configured routes behind a payment proof. The
// proof check itself is delegated to the verifier; this middleware only
// holds the per-route requirement table.
type PaywallMiddleware struct {
	logs     *zap.SugaredLogger
	payTo    string
	routes   map[string]Requirement
	verifier ProofVerifier
}

func NewPaywallMiddleware(logger *zap.SugaredLogger, payTo string, routes map[string]Requirement, verifier ProofVerifier) *PaywallMiddleware {
	return &PaywallMiddleware{
		logs:     logger,
		payTo:    payTo,
		routes:   routes,
		verifier: verifier,
	}
}

func (m *PaywallMiddleware) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requirement, gated := m.routes[r.Method+" "+r.URL.Path]
		if !gated {
			next.ServeHTTP(w, r)
			return
		}
		requirement.PayTo = m.payTo

		proof := r.Header.Get(PaymentHeader)
		if proof == "" {
			m.paymentRequired(w, r, requirement, "payment proof is required")
			return
		}

		if err := m.verifier.Verify(r.Context(), proof, requirement); err != nil {
			m.logs.Errorw("payment proof rejected",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err)
			m.paymentRequired(w, r, requirement, "payment proof rejected")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *PaywallMiddleware) paymentRequired(w http.ResponseWriter, r *http.Request, requirement Requirement, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusPaymentRequired)

	resp := map[string]any{
		"x402Version": 1,
		"error":       reason,
		"accepts":     []Requirement{requirement},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		m.logs.Errorw("failed to encode payment-required response", "error", err)
	}
}
