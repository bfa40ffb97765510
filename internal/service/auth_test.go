package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"runway.app/api/common/password"
	"runway.app/api/internal/model"
	"runway.app/api/internal/service"
)

var _ = Describe("AuthService", func() {
	var (
		ctx  context.Context
		f    *fixture
		auth service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
		auth = f.services.Auth()
	})

	Describe("Signup", func() {
		It("creates the user, an owned organization and a session", func() {
			session, err := auth.Signup(ctx, service.SignupInput{
				Name:     "Ada Lovelace",
				Email:    "  Ada@Example.com ",
				Password: "correct horse",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Token).NotTo(BeEmpty())
			Expect(session.ExpiresAt).To(Equal(f.now.Add(time.Hour)))
			Expect(session.User.Email).To(Equal("ada@example.com"))
			Expect(session.User.PasswordHash).NotTo(Equal("correct horse"))
			Expect(session.Organization.Name).To(Equal("Ada Lovelace's Organization"))
			Expect(session.Organization.Slug).To(Equal("ada-lovelace-s-organization"))
			Expect(session.Organization.DefaultCurrency).To(Equal("USD"))
			Expect(session.Role).To(Equal(model.MembershipRoleOwner))

			principal := f.principal(ctx, session)
			Expect(principal.UserID).To(Equal(session.User.ID))
			Expect(principal.OrganizationID).To(Equal(session.Organization.ID))
			Expect(principal.Role).To(Equal(model.MembershipRoleOwner))
		})

		It("uses the requested organization name and currency", func() {
			session, err := auth.Signup(ctx, service.SignupInput{
				Name:             "Grace",
				Email:            "grace@example.com",
				Password:         "correct horse",
				OrganizationName: "Navy Labs",
				Currency:         "eur",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(session.Organization.Name).To(Equal("Navy Labs"))
			Expect(session.Organization.DefaultCurrency).To(Equal("EUR"))
		})

		It("reports every invalid field", func() {
			_, err := auth.Signup(ctx, service.SignupInput{
				Email:    "not-an-email",
				Password: "short",
				Currency: "dollars",
			})
			v, ok := service.IsValidation(err)
			Expect(ok).To(BeTrue())
			Expect(v.Fields).To(HaveKey("name"))
			Expect(v.Fields).To(HaveKey("email"))
			Expect(v.Fields).To(HaveKey("password"))
			Expect(v.Fields).To(HaveKey("organization_default_currency"))
		})

		It("rejects an email that is already registered", func() {
			f.signup(ctx, "Ada", "ada@example.com")
			_, err := auth.Signup(ctx, service.SignupInput{
				Name:     "Other Ada",
				Email:    "ADA@example.com",
				Password: "correct horse",
			})
			Expect(errors.Is(err, service.ErrEmailTaken)).To(BeTrue())
		})
	})

	Describe("Login", func() {
		var session *service.Session

		BeforeEach(func() {
			session = f.signup(ctx, "Ada", "ada@example.com")
		})

		It("issues a token for the first organization", func() {
			login, err := auth.Login(ctx, service.LoginInput{Email: "ada@example.com", Password: "correct horse"})
			Expect(err).NotTo(HaveOccurred())
			Expect(login.Organization.ID).To(Equal(session.Organization.ID))
			Expect(login.Token).NotTo(Equal(session.Token))
		})

		It("signs into a chosen organization", func() {
			other, err := f.services.Organizations().Create(ctx, session.User.ID, service.CreateOrganizationInput{Name: "Side Project"})
			Expect(err).NotTo(HaveOccurred())

			login, err := auth.Login(ctx, service.LoginInput{
				Email:          "ada@example.com",
				Password:       "correct horse",
				OrganizationID: &other.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(login.Organization.ID).To(Equal(other.ID))
			Expect(f.principal(ctx, login).OrganizationID).To(Equal(other.ID))
		})

		It("refuses an organization the user does not belong to", func() {
			stranger := int64(42)
			_, err := auth.Login(ctx, service.LoginInput{
				Email:          "ada@example.com",
				Password:       "correct horse",
				OrganizationID: &stranger,
			})
			Expect(errors.Is(err, service.ErrNotMember)).To(BeTrue())
		})

		It("rejects a wrong password and an unknown email alike", func() {
			_, err := auth.Login(ctx, service.LoginInput{Email: "ada@example.com", Password: "wrong horse"})
			Expect(errors.Is(err, service.ErrUnauthorized)).To(BeTrue())

			_, err = auth.Login(ctx, service.LoginInput{Email: "nobody@example.com", Password: "correct horse"})
			Expect(errors.Is(err, service.ErrUnauthorized)).To(BeTrue())
		})
	})

	Describe("Resolve", func() {
		It("rejects empty, garbage and expired tokens", func() {
			session := f.signup(ctx, "Ada", "ada@example.com")

			_, err := auth.Resolve(ctx, "")
			Expect(errors.Is(err, service.ErrUnauthorized)).To(BeTrue())

			_, err = auth.Resolve(ctx, "not.a.token")
			Expect(errors.Is(err, service.ErrUnauthorized)).To(BeTrue())

			f.now = f.now.Add(2 * time.Hour)
			_, err = auth.Resolve(ctx, session.Token)
			Expect(errors.Is(err, service.ErrUnauthorized)).To(BeTrue())
		})

		It("surfaces revocation lookup failures", func() {
			failing := service.NewAuthService(
				f.db.Stores(),
				f.db,
				&mockRevocationStore{
					isRevokedFn: func(context.Context, string) (bool, error) {
						return false, errors.New("redis down")
					},
				},
				f.tokens,
				password.NewHasher(4),
				"USD",
			)
			issued, err := f.tokens.Issue(1, 2)
			Expect(err).NotTo(HaveOccurred())

			_, err = failing.Resolve(ctx, issued.Token)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, service.ErrUnauthorized)).To(BeFalse())
		})
	})

	Describe("SwitchOrganization", func() {
		It("refuses an organization the caller is not a member of and issues nothing", func() {
			ada := f.signup(ctx, "Ada", "ada@example.com")
			grace := f.signup(ctx, "Grace", "grace@example.com")

			session, err := auth.SwitchOrganization(ctx, f.principal(ctx, ada), grace.Organization.ID)
			Expect(errors.Is(err, service.ErrNotMember)).To(BeTrue())
			Expect(session).To(BeNil())
		})

		It("issues a token scoped to the target organization", func() {
			ada := f.signup(ctx, "Ada", "ada@example.com")
			principal := f.principal(ctx, ada)
			side, err := f.services.Organizations().Create(ctx, principal.UserID, service.CreateOrganizationInput{Name: "Side Project"})
			Expect(err).NotTo(HaveOccurred())

			switched, err := auth.SwitchOrganization(ctx, principal, side.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(switched.Organization.ID).To(Equal(side.ID))
			Expect(switched.Role).To(Equal(model.MembershipRoleOwner))
			Expect(f.principal(ctx, switched).OrganizationID).To(Equal(side.ID))

			// the previous token is untouched
			Expect(f.principal(ctx, ada).OrganizationID).To(Equal(ada.Organization.ID))
		})
	})

	Describe("Logout", func() {
		It("revokes the current token only", func() {
			session := f.signup(ctx, "Ada", "ada@example.com")
			other, err := auth.Login(ctx, service.LoginInput{Email: "ada@example.com", Password: "correct horse"})
			Expect(err).NotTo(HaveOccurred())

			Expect(auth.Logout(ctx, f.principal(ctx, session))).To(Succeed())

			_, err = auth.Resolve(ctx, session.Token)
			Expect(errors.Is(err, service.ErrUnauthorized)).To(BeTrue())
			Expect(f.principal(ctx, other).UserID).To(Equal(session.User.ID))
		})
	})

	Describe("Me", func() {
		It("returns the user, current organization and all memberships", func() {
			session := f.signup(ctx, "Ada", "ada@example.com")
			principal := f.principal(ctx, session)
			_, err := f.services.Organizations().Create(ctx, principal.UserID, service.CreateOrganizationInput{Name: "Side Project"})
			Expect(err).NotTo(HaveOccurred())

			profile, err := auth.Me(ctx, principal)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.User.ID).To(Equal(session.User.ID))
			Expect(profile.Organization.ID).To(Equal(session.Organization.ID))
			Expect(profile.Role).To(Equal(model.MembershipRoleOwner))
			Expect(profile.Memberships).To(HaveLen(2))
			Expect(profile.Memberships[0].Organization.ID).To(Equal(session.Organization.ID))
		})
	})
})
