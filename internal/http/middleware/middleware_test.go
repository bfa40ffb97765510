package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"runway.app/api/common/id"
	"runway.app/api/common/logger"
	"runway.app/api/internal/http/middleware"
	"runway.app/api/internal/model"
	"runway.app/api/internal/service"
)

type mockResolver struct {
	resolveFn func(ctx context.Context, rawToken string) (*model.Principal, error)
}

func (m *mockResolver) Resolve(ctx context.Context, rawToken string) (*model.Principal, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, rawToken)
	}
	return nil, service.ErrUnauthorized
}

func serve(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var _ = Describe("RequireAuth", func() {
	var (
		router   *gin.Engine
		resolver *mockResolver
		seen     *model.Principal
		fields   logger.LogFields
	)

	BeforeEach(func() {
		resolver = &mockResolver{}
		seen = nil
		fields = logger.LogFields{}
		router = gin.New()
		router.GET("/private", middleware.RequireAuth(resolver), func(c *gin.Context) {
			p, ok := middleware.GetPrincipal(c.Request.Context())
			if ok {
				seen = &p
			}
			fields = logger.GetLogFields(c.Request.Context())
			c.Status(http.StatusNoContent)
		})
	})

	DescribeTable("rejects requests without a usable bearer token",
		func(header string) {
			w := serve(router, header)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(seen).To(BeNil())
		},
		Entry("no header", ""),
		Entry("basic auth", "Basic dXNlcjpwYXNz"),
		Entry("empty bearer", "Bearer   "),
	)

	It("rejects tokens the resolver refuses", func() {
		resolver.resolveFn = func(_ context.Context, raw string) (*model.Principal, error) {
			Expect(raw).To(Equal("expired-token"))
			return nil, service.ErrUnauthorized
		}
		w := serve(router, "Bearer expired-token")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("answers 500 when the resolver fails", func() {
		resolver.resolveFn = func(context.Context, string) (*model.Principal, error) {
			return nil, errors.New("redis down")
		}
		w := serve(router, "Bearer some-token")
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})

	It("stores the principal and log fields for downstream handlers", func() {
		resolver.resolveFn = func(context.Context, string) (*model.Principal, error) {
			return &model.Principal{UserID: 3, OrganizationID: 30, Role: model.MembershipRoleAdmin, TokenID: "jti"}, nil
		}

		w := serve(router, "bearer good-token")
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(seen).NotTo(BeNil())
		Expect(seen.OrganizationID).To(Equal(int64(30)))
		Expect(seen.Role).To(Equal(model.MembershipRoleAdmin))
		Expect(*fields.OrganizationID).To(Equal(int64(30)))
		Expect(*fields.UserID).To(Equal(int64(3)))
	})
})

var _ = Describe("RequestID", func() {
	var router *gin.Engine
	var logged *string

	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
		logged = nil
		router = gin.New()
		router.Use(middleware.RequestID())
		router.GET("/", func(c *gin.Context) {
			logged = logger.GetLogFields(c.Request.Context()).RequestID
			c.Status(http.StatusOK)
		})
	})

	It("echoes the caller's request id", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
		Expect(*logged).To(Equal("abc-123"))
	})

	It("mints one when absent", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(w.Header().Get(middleware.RequestIDHeader)).NotTo(BeEmpty())
		Expect(*logged).To(Equal(w.Header().Get(middleware.RequestIDHeader)))
	})
})

var _ = Describe("Recovery", func() {
	It("turns a panic into a 500", func() {
		router := gin.New()
		router.Use(middleware.Recovery(), middleware.Logger())
		router.GET("/boom", func(*gin.Context) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("internal server error"))
	})
})
