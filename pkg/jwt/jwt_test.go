package jwt_test

import (
	"time"

	verifier "codevault/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Verifier", func() {
	var (
		secret []byte
		v      *verifier.Verifier
	)

	signToken := func(claims gojwt.MapClaims, key []byte) string {
		token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
		signed, err := token.SignedString(key)
		Expect(err).NotTo(HaveOccurred())
		return signed
	}

	BeforeEach(func() {
		secret = []byte("test-secret")
		v = verifier.NewVerifier(secret)
	})

	AfterEach(func() {
		verifier.TimeNow = time.Now
	})

	Describe("Subject", func() {
		When("the token is valid", func() {
			It("returns the subject claim", func() {
				token := signToken(gojwt.MapClaims{
					"sub": "auth0|abc123",
					"exp": time.Now().Add(time.Hour).Unix(),
				}, secret)

				sub, err := v.Subject(token)
				Expect(err).NotTo(HaveOccurred())
				Expect(sub).To(Equal("auth0|abc123"))
			})
		})

		When("the token is signed with a different secret", func() {
			It("rejects the token", func() {
				token := signToken(gojwt.MapClaims{"sub": "auth0|abc123"}, []byte("other-secret"))

				_, err := v.Subject(token)
				Expect(err).To(MatchError(verifier.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			It("rejects the token", func() {
				_, err := v.Subject("not.a.token")
				Expect(err).To(MatchError(verifier.ErrTokenNotValid))
			})
		})

		When("the token has no subject claim", func() {
			It("rejects the token", func() {
				token := signToken(gojwt.MapClaims{
					"exp": time.Now().Add(time.Hour).Unix(),
				}, secret)

				_, err := v.Subject(token)
				Expect(err).To(MatchError(verifier.ErrNoSubject))
			})
		})

		When("the token expired", func() {
			It("rejects the token", func() {
				token := signToken(gojwt.MapClaims{
					"sub": "auth0|abc123",
					"exp": time.Now().Add(time.Hour).Unix(),
				}, secret)

				verifier.TimeNow = func() time.Time {
					return time.Now().Add(2 * time.Hour)
				}

				_, err := v.Subject(token)
				Expect(err).To(MatchError(verifier.ErrTokenExpired))
			})
		})
	})
})
