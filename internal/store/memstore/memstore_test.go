package memstore_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
	"runway.app/api/internal/store"
	"runway.app/api/internal/store/memstore"
)

var _ = Describe("memstore", func() {
	var (
		ctx    context.Context
		db     *memstore.DB
		stores *memstore.Stores
		now    time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
		db = memstore.New(memstore.WithClock(func() time.Time { return now }))
		stores = db.Stores()
	})

	seedOrg := func(id int64, slug string) *model.Organization {
		org := &model.Organization{ID: id, Name: "Org " + slug, Slug: slug, DefaultCurrency: "USD"}
		Expect(stores.Organizations().Create(ctx, org)).To(Succeed())
		return org
	}

	Describe("users", func() {
		It("creates and finds users by id and email", func() {
			user := &model.User{ID: 1, Name: "Ada", Email: "ada@example.com", PasswordHash: "h"}
			Expect(stores.Users().Create(ctx, user)).To(Succeed())
			Expect(user.CreatedAt).To(Equal(now))

			byID, err := stores.Users().GetByID(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(byID.Email).To(Equal("ada@example.com"))

			byEmail, err := stores.Users().GetByEmail(ctx, "ada@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(byEmail.ID).To(Equal(int64(1)))
		})

		It("rejects duplicate emails", func() {
			Expect(stores.Users().Create(ctx, &model.User{ID: 1, Email: "a@example.com"})).To(Succeed())
			err := stores.Users().Create(ctx, &model.User{ID: 2, Email: "a@example.com"})
			Expect(errors.Is(err, store.ErrDuplicate)).To(BeTrue())
		})

		It("returns ErrNotFound for unknown users", func() {
			_, err := stores.Users().GetByEmail(ctx, "nobody@example.com")
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("organizations", func() {
		It("enforces unique slugs", func() {
			seedOrg(1, "acme")
			err := stores.Organizations().Create(ctx, &model.Organization{ID: 2, Slug: "acme"})
			Expect(errors.Is(err, store.ErrDuplicate)).To(BeTrue())
		})

		It("updates name and currency", func() {
			org := seedOrg(1, "acme")
			org.Name = "Acme Ltd"
			org.DefaultCurrency = "EUR"
			Expect(stores.Organizations().Update(ctx, org)).To(Succeed())

			got, err := stores.Organizations().GetBySlug(ctx, "acme")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Acme Ltd"))
			Expect(got.DefaultCurrency).To(Equal("EUR"))
		})
	})

	Describe("memberships", func() {
		BeforeEach(func() {
			Expect(stores.Users().Create(ctx, &model.User{ID: 10, Email: "u@example.com"})).To(Succeed())
			seedOrg(1, "one")
			seedOrg(2, "two")
		})

		It("lists the organizations a user belongs to", func() {
			Expect(stores.Memberships().Create(ctx, &model.Membership{UserID: 10, OrganizationID: 2, Role: model.MembershipRoleMember})).To(Succeed())
			Expect(stores.Memberships().Create(ctx, &model.Membership{UserID: 10, OrganizationID: 1, Role: model.MembershipRoleOwner})).To(Succeed())

			list, err := stores.Memberships().ListByUser(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
			Expect(list[0].Organization.Slug).To(Equal("one"))
			Expect(list[0].Role).To(Equal(model.MembershipRoleOwner))
		})

		It("returns ErrNotFound without a membership", func() {
			_, err := stores.Memberships().Get(ctx, 10, 2)
			Expect(err).To(MatchError(store.ErrNotFound))
		})

		It("rejects memberships for unknown organizations", func() {
			err := stores.Memberships().Create(ctx, &model.Membership{UserID: 10, OrganizationID: 99, Role: model.MembershipRoleMember})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("transactions", func() {
		day := func(d int) time.Time { return time.Date(2024, time.April, d, 0, 0, 0, 0, time.UTC) }

		BeforeEach(func() {
			seedOrg(1, "one")
			seedOrg(2, "two")
			for i, d := range []int{10, 1, 20} {
				Expect(stores.Transactions().Create(ctx, &model.Transaction{
					ID: int64(i + 1), OrganizationID: 1, Description: "t", Amount: 100,
					Currency: "USD", Type: model.TransactionTypeExpense, OccurredAt: day(d),
				})).To(Succeed())
			}
			Expect(stores.Transactions().Create(ctx, &model.Transaction{
				ID: 99, OrganizationID: 2, Description: "other", Amount: 5,
				Currency: "USD", Type: model.TransactionTypeIncome, OccurredAt: day(5),
			})).To(Succeed())
		})

		It("lists only the organization's transactions, oldest first", func() {
			list, err := stores.Transactions().List(ctx, 1, ledger.Range{})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(3))
			Expect(list[0].OccurredAt).To(Equal(day(1)))
			Expect(list[2].OccurredAt).To(Equal(day(20)))
		})

		It("lists newest first", func() {
			list, err := stores.Transactions().ListNewestFirst(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(list[0].OccurredAt).To(Equal(day(20)))
		})

		It("applies an inclusive range", func() {
			from, to := day(1), day(10)
			list, err := stores.Transactions().List(ctx, 1, ledger.Range{From: &from, To: &to})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})

		It("rejects non-positive amounts", func() {
			err := stores.Transactions().Create(ctx, &model.Transaction{ID: 50, OrganizationID: 1, Amount: 0, Type: model.TransactionTypeIncome})
			Expect(err).To(HaveOccurred())
		})

		It("rejects transactions for unknown organizations", func() {
			err := stores.Transactions().Create(ctx, &model.Transaction{ID: 51, OrganizationID: 42, Amount: 1, Type: model.TransactionTypeIncome})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("summaries", func() {
		It("keeps one record per organization", func() {
			seedOrg(1, "one")
			first := &model.Summary{OrganizationID: 1, CashOnHand: 10, MonthlyBurn: 5, RunwayMonths: decimal.RequireFromString("2")}
			Expect(stores.Summaries().Upsert(ctx, first)).To(Succeed())

			now = now.Add(time.Minute)
			second := &model.Summary{OrganizationID: 1, CashOnHand: 20, MonthlyBurn: 5, RunwayMonths: decimal.RequireFromString("4")}
			Expect(stores.Summaries().Upsert(ctx, second)).To(Succeed())

			got, ok := db.CachedSummary(1)
			Expect(ok).To(BeTrue())
			Expect(got.CashOnHand).To(Equal(int64(20)))
			Expect(got.RunwayMonths.String()).To(Equal("4"))
			Expect(got.UpdatedAt).To(Equal(now))
		})

		It("is safe under concurrent upserts", func() {
			seedOrg(1, "one")
			var wg sync.WaitGroup
			for i := range 20 {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer GinkgoRecover()
					Expect(stores.Summaries().Upsert(ctx, &model.Summary{OrganizationID: 1, CashOnHand: int64(i)})).To(Succeed())
				}(i)
			}
			wg.Wait()
			_, ok := db.CachedSummary(1)
			Expect(ok).To(BeTrue())
		})
	})

	Describe("WithTx", func() {
		It("discards writes when the function fails", func() {
			boom := errors.New("boom")
			err := db.WithTx(ctx, func(tx store.Provider) error {
				Expect(tx.Organizations().Create(ctx, &model.Organization{ID: 1, Slug: "rolled-back"})).To(Succeed())
				return boom
			})
			Expect(err).To(MatchError(boom))

			_, err = stores.Organizations().GetBySlug(ctx, "rolled-back")
			Expect(err).To(MatchError(store.ErrNotFound))
		})

		It("keeps writes when the function succeeds", func() {
			Expect(db.WithTx(ctx, func(tx store.Provider) error {
				return tx.Organizations().Create(ctx, &model.Organization{ID: 1, Slug: "kept"})
			})).To(Succeed())

			_, err := stores.Organizations().GetBySlug(ctx, "kept")
			Expect(err).NotTo(HaveOccurred())
		})
	})
})

var _ = Describe("RevocationStore", func() {
	It("reports revoked tokens until they expire", func() {
		ctx := context.Background()
		revocations := memstore.NewRevocationStore()

		Expect(revocations.Revoke(ctx, "abc", time.Now().Add(time.Hour))).To(Succeed())
		revoked, err := revocations.IsRevoked(ctx, "abc")
		Expect(err).NotTo(HaveOccurred())
		Expect(revoked).To(BeTrue())

		revoked, err = revocations.IsRevoked(ctx, "other")
		Expect(err).NotTo(HaveOccurred())
		Expect(revoked).To(BeFalse())

		Expect(revocations.Revoke(ctx, "old", time.Now().Add(-time.Minute))).To(Succeed())
		revoked, err = revocations.IsRevoked(ctx, "old")
		Expect(err).NotTo(HaveOccurred())
		Expect(revoked).To(BeFalse())
	})

	It("forgets an entry once the token would have expired", func() {
		ctx := context.Background()
		now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
		revocations := memstore.NewRevocationStore(memstore.WithRevocationClock(func() time.Time { return now }))

		Expect(revocations.Revoke(ctx, "abc", now.Add(time.Hour))).To(Succeed())
		revoked, err := revocations.IsRevoked(ctx, "abc")
		Expect(err).NotTo(HaveOccurred())
		Expect(revoked).To(BeTrue())

		now = now.Add(time.Hour)
		revoked, err = revocations.IsRevoked(ctx, "abc")
		Expect(err).NotTo(HaveOccurred())
		Expect(revoked).To(BeFalse())
	})
})
