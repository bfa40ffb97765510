package export_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"runway.app/api/internal/export"
	"runway.app/api/internal/model"
)

var _ = Describe("AmountFormatter", func() {
	var f *export.AmountFormatter

	BeforeEach(func() {
		var err error
		f, err = export.NewAmountFormatter("en-US", "USD")
		Expect(err).NotTo(HaveOccurred())
	})

	It("groups thousands without fractional digits", func() {
		Expect(f.Format(150000, "USD")).To(Equal("$150,000"))
		Expect(f.Format(7, "USD")).To(Equal("$7"))
	})

	It("prefixes negative amounts with a minus sign", func() {
		Expect(f.Format(-52000, "USD")).To(Equal("-$52,000"))
	})

	It("signs expenses and leaves income unsigned", func() {
		at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		Expect(f.Signed(model.Transaction{Amount: 8000, Currency: "USD", Type: model.TransactionTypeExpense, OccurredAt: at})).To(Equal("-$8,000"))
		Expect(f.Signed(model.Transaction{Amount: 8000, Currency: "USD", Type: model.TransactionTypeIncome, OccurredAt: at})).To(Equal("$8,000"))
	})

	It("uses the symbol of other known currencies", func() {
		Expect(f.Format(1000, "EUR")).To(Equal("€1,000"))
	})

	It("falls back to the default currency for unknown codes", func() {
		Expect(f.Format(1000, "ZZZ")).To(Equal("$1,000"))
		Expect(f.Format(1000, "")).To(Equal("$1,000"))
		Expect(f.Format(-1000, "not-a-code")).To(Equal("-$1,000"))
	})

	It("applies the locale's grouping separator", func() {
		de, err := export.NewAmountFormatter("de-DE", "EUR")
		Expect(err).NotTo(HaveOccurred())
		Expect(de.Format(1234567, "EUR")).To(Equal("€1.234.567"))
	})

	It("rejects an unknown fallback currency", func() {
		_, err := export.NewAmountFormatter("en-US", "ZZZ")
		Expect(err).To(HaveOccurred())
	})

	It("rejects a malformed locale", func() {
		_, err := export.NewAmountFormatter("!!", "USD")
		Expect(err).To(HaveOccurred())
	})
})
