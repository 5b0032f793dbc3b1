package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"codevault/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	request := func(body string) *http.Request {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	Describe("SyncUserRequest", func() {
		It("accepts a well-formed sync payload", func() {
			var req payload.SyncUserRequest
			err := dv.DecodeAndValidateJSONPayload(
				request(`{"identitySubject":"auth0|abc","walletAddress":"0xAbC123","email":"dev@example.com"}`),
				&req)

			Expect(err).NotTo(HaveOccurred())
			Expect(req.IdentitySubject).To(Equal("auth0|abc"))
		})

		It("rejects a wallet that is not hex", func() {
			var req payload.SyncUserRequest
			err := dv.DecodeAndValidateJSONPayload(
				request(`{"identitySubject":"auth0|abc","walletAddress":"not-a-wallet"}`),
				&req)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("walletAddress"))
		})

		It("rejects unknown fields", func() {
			var req payload.SyncUserRequest
			err := dv.DecodeAndValidateJSONPayload(
				request(`{"identitySubject":"auth0|abc","walletAddress":"0xaa11","role":"admin"}`),
				&req)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("CreateProjectRequest", func() {
		It("rejects a missing title", func() {
			var req payload.CreateProjectRequest
			err := dv.DecodeAndValidateJSONPayload(
				request(`{"description":"desc","ownerWalletAddress":"0xaa11"}`),
				&req)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("title"))
		})

		It("rejects a negative price", func() {
			var req payload.CreateProjectRequest
			err := dv.DecodeAndValidateJSONPayload(
				request(`{"title":"t","description":"desc","ownerWalletAddress":"0xaa11","priceView":-1}`),
				&req)

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("GrantAccessRequest", func() {
		It("accepts the two known access types", func() {
			for _, accessType := range []string{"view", "download"} {
				var req payload.GrantAccessRequest
				err := dv.DecodeAndValidateJSONPayload(
					request(`{"projectId":"p1","walletAddress":"0xaa11","accessType":"`+accessType+`"}`),
					&req)

				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("rejects any other access type", func() {
			var req payload.GrantAccessRequest
			err := dv.DecodeAndValidateJSONPayload(
				request(`{"projectId":"p1","walletAddress":"0xaa11","accessType":"upload"}`),
				&req)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("accessType"))
		})
	})

	Describe("CreateTransactionRequest", func() {
		It("requires an explicit amount", func() {
			var req payload.CreateTransactionRequest
			err := dv.DecodeAndValidateJSONPayload(
				request(`{"walletAddress":"0xaa11","projectId":"p1","type":"view_purchase"}`),
				&req)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("amount"))
		})

		It("accepts a zero amount", func() {
			var req payload.CreateTransactionRequest
			err := dv.DecodeAndValidateJSONPayload(
				request(`{"walletAddress":"0xaa11","projectId":"p1","amount":0,"type":"view_purchase"}`),
				&req)

			Expect(err).NotTo(HaveOccurred())
			Expect(req.Amount).NotTo(BeNil())
			Expect(*req.Amount).To(BeZero())
		})

		It("rejects an unknown purchase type", func() {
			var req payload.CreateTransactionRequest
			err := dv.DecodeAndValidateJSONPayload(
				request(`{"walletAddress":"0xaa11","projectId":"p1","amount":1,"type":"subscription"}`),
				&req)

			Expect(err).To(HaveOccurred())
		})
	})
})
