package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"codevault/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FacilitatorClient", func() {
	var (
		server      *httptest.Server
		requirement middleware.Requirement
		verdict     map[string]any
		status      int
		gotBody     map[string]any
	)

	BeforeEach(func() {
		status = http.StatusOK
		verdict = map[string]any{"isValid": true}
		gotBody = nil

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.URL.Path).To(Equal("/verify"))
			Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())

			w.WriteHeader(status)
			Expect(json.NewEncoder(w).Encode(verdict)).To(Succeed())
		}))

		requirement = middleware.Requirement{
			Network: "movement",
			PayTo:   "0xmerchant",
		}
	})

	AfterEach(func() {
		server.Close()
	})

	It("accepts a proof the facilitator validates", func() {
		client := middleware.NewFacilitatorClient(server.URL)

		err := client.Verify(context.Background(), "proof-data", requirement)
		Expect(err).NotTo(HaveOccurred())
		Expect(gotBody["paymentPayload"]).To(Equal("proof-data"))
	})

	It("rejects a proof the facilitator flags", func() {
		verdict = map[string]any{"isValid": false, "invalidReason": "expired"}
		client := middleware.NewFacilitatorClient(server.URL)

		err := client.Verify(context.Background(), "proof-data", requirement)
		Expect(err).To(MatchError(middleware.ErrProofRejected))
		Expect(err.Error()).To(ContainSubstring("expired"))
	})

	It("rejects when the facilitator errors", func() {
		status = http.StatusBadRequest
		client := middleware.NewFacilitatorClient(server.URL)

		err := client.Verify(context.Background(), "proof-data", requirement)
		Expect(err).To(MatchError(middleware.ErrProofRejected))
	})
})
