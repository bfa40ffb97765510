package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"runway.app/api/internal/ledger"
	"runway.app/api/internal/model"
	"runway.app/api/internal/service"
	"runway.app/api/internal/store"
)

var _ = Describe("TransactionService", func() {
	var (
		ctx     context.Context
		f       *fixture
		svc     service.TransactionService
		session *service.Session
		orgID   int64
	)

	amount := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
		svc = f.services.Transactions()
		session = f.signup(ctx, "Ada", "ada@example.com")
		orgID = session.Organization.ID
	})

	Describe("Create", func() {
		It("defaults the date to now and the currency to the organization's", func() {
			txn, err := svc.Create(ctx, orgID, service.CreateTransactionInput{
				Description: "  Client invoice  ",
				Amount:      amount("1500"),
				Type:        model.TransactionTypeIncome,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(txn.ID).NotTo(BeZero())
			Expect(txn.OrganizationID).To(Equal(orgID))
			Expect(txn.Description).To(Equal("Client invoice"))
			Expect(txn.Amount).To(Equal(int64(1500)))
			Expect(txn.Currency).To(Equal("USD"))
			Expect(txn.OccurredAt).To(Equal(f.now))
		})

		It("rounds to whole units half away from zero", func() {
			txn, err := svc.Create(ctx, orgID, service.CreateTransactionInput{
				Description: "Coffee",
				Amount:      amount("4.50"),
				Type:        model.TransactionTypeExpense,
				Currency:    strPtr("eur"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(txn.Amount).To(Equal(int64(5)))
			Expect(txn.Currency).To(Equal("EUR"))
		})

		DescribeTable("rejects non-positive amounts without storing anything",
			func(value string) {
				_, err := svc.Create(ctx, orgID, service.CreateTransactionInput{
					Description: "Refund",
					Amount:      amount(value),
					Type:        model.TransactionTypeExpense,
				})
				v, ok := service.IsValidation(err)
				Expect(ok).To(BeTrue())
				Expect(v.Fields).To(HaveKey("amount"))

				txns, err := svc.List(ctx, orgID)
				Expect(err).NotTo(HaveOccurred())
				Expect(txns).To(BeEmpty())
			},
			Entry("zero", "0"),
			Entry("negative", "-100"),
			Entry("rounds to zero", "0.4"),
		)

		DescribeTable("rejects amounts beyond the cap instead of wrapping them",
			func(value string) {
				_, err := svc.Create(ctx, orgID, service.CreateTransactionInput{
					Description: "Windfall",
					Amount:      amount(value),
					Type:        model.TransactionTypeIncome,
				})
				v, ok := service.IsValidation(err)
				Expect(ok).To(BeTrue())
				Expect(v.Fields).To(HaveKeyWithValue("amount", ledger.ErrAmountTooLarge.Error()))

				txns, err := svc.List(ctx, orgID)
				Expect(err).NotTo(HaveOccurred())
				Expect(txns).To(BeEmpty())
			},
			Entry("just past int64", "9223372036854775808"),
			Entry("wraps to one as uint64", "18446744073709551617"),
			Entry("far beyond int64", "1e30"),
		)

		It("collects every invalid field", func() {
			_, err := svc.Create(ctx, orgID, service.CreateTransactionInput{
				Description: "x",
				Type:        model.TransactionType("TRANSFER"),
				Currency:    strPtr("dollars"),
			})
			v, ok := service.IsValidation(err)
			Expect(ok).To(BeTrue())
			Expect(v.Fields).To(HaveKeyWithValue("amount", "is required"))
			Expect(v.Fields).To(HaveKeyWithValue("type", "must be INCOME or EXPENSE"))
			Expect(v.Fields).To(HaveKey("description"))
			Expect(v.Fields).To(HaveKey("currency"))
		})

		It("never reaches the store when validation fails", func() {
			txns := &mockTransactionStore{}
			stores := &mockStoreProvider{orgs: &mockOrganizationStore{}, txns: txns}
			isolated := service.NewTransactionService(stores, time.Now)

			_, err := isolated.Create(ctx, orgID, service.CreateTransactionInput{
				Description: "Bad",
				Amount:      amount("0"),
				Type:        model.TransactionTypeExpense,
			})
			Expect(err).To(HaveOccurred())
			Expect(txns.createCalls).To(BeZero())
		})

		It("reports an unknown organization", func() {
			_, err := svc.Create(ctx, 404, service.CreateTransactionInput{
				Description: "Ghost",
				Amount:      amount("10"),
				Type:        model.TransactionTypeIncome,
			})
			Expect(errors.Is(err, service.ErrOrganizationNotFound)).To(BeTrue())
		})

		It("wraps store failures", func() {
			stores := &mockStoreProvider{
				txns: &mockTransactionStore{
					createFn: func(context.Context, *model.Transaction) error {
						return store.ErrDuplicate
					},
				},
			}
			isolated := service.NewTransactionService(stores, time.Now)

			_, err := isolated.Create(ctx, orgID, service.CreateTransactionInput{
				Description: "Rent",
				Amount:      amount("10"),
				Type:        model.TransactionTypeExpense,
				Currency:    strPtr("USD"),
			})
			Expect(errors.Is(err, store.ErrDuplicate)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("creating transaction"))
		})
	})

	Describe("List", func() {
		It("returns only the organization's transactions, newest first", func() {
			older := f.record(ctx, orgID, model.TransactionTypeIncome, 100, f.now.AddDate(0, 0, -2))
			newer := f.record(ctx, orgID, model.TransactionTypeExpense, 40, f.now.AddDate(0, 0, -1))

			other := f.signup(ctx, "Grace", "grace@example.com")
			f.record(ctx, other.Organization.ID, model.TransactionTypeIncome, 999, f.now)

			txns, err := svc.List(ctx, orgID)
			Expect(err).NotTo(HaveOccurred())
			Expect(txns).To(HaveLen(2))
			Expect(txns[0].ID).To(Equal(newer.ID))
			Expect(txns[1].ID).To(Equal(older.ID))
		})
	})
})
