package ledger

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

type MembershipRole string

const (
	MembershipRoleOwner  MembershipRole = "OWNER"
	MembershipRoleMember MembershipRole = "MEMBER"
)

type Transaction struct {
	Description string
	Type        TransactionType
}

type Membership struct {
	Role MembershipRole
}

func bad() {
	t := &Transaction{}
	t.Type = "TRANSFER" // want "enum field Type assigned string literal"

	_ = Membership{Role: "ADMIN"} // want "enum field Role set to string literal"

	if t.Type == "INCOME" { // want "enum compared with string literal"
		return
	}
}

func good() {
	t := &Transaction{Description: "Payroll"}
	t.Type = TransactionTypeExpense
	t.Description = "Rent"

	m := Membership{Role: MembershipRoleOwner}
	if m.Role != MembershipRoleMember && t.Type == TransactionTypeIncome {
		return
	}
}

func alsoGood(raw string) {
	// conversions from runtime values are checked elsewhere
	t := Transaction{Type: TransactionType(raw)}
	_ = t
}
