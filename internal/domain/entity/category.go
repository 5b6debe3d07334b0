// Package entity defines the core business entities for the domain layer.
package entity

// ExpenseCategory classifies expenses and the budgets that track them.
type ExpenseCategory string

const (
	ExpenseCategoryFoodDining     ExpenseCategory = "Food & Dining"
	ExpenseCategoryTransportation ExpenseCategory = "Transportation"
	ExpenseCategoryShopping       ExpenseCategory = "Shopping"
	ExpenseCategoryEntertainment  ExpenseCategory = "Entertainment"
	ExpenseCategoryBillsUtilities ExpenseCategory = "Bills & Utilities"
	ExpenseCategoryHealthcare     ExpenseCategory = "Healthcare"
	ExpenseCategoryEducation      ExpenseCategory = "Education"
	ExpenseCategoryTravel         ExpenseCategory = "Travel"
	ExpenseCategoryGroceries      ExpenseCategory = "Groceries"
	ExpenseCategoryOther          ExpenseCategory = "Other"
)

// ExpenseCategories lists every accepted expense category in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryFoodDining,
	ExpenseCategoryTransportation,
	ExpenseCategoryShopping,
	ExpenseCategoryEntertainment,
	ExpenseCategoryBillsUtilities,
	ExpenseCategoryHealthcare,
	ExpenseCategoryEducation,
	ExpenseCategoryTravel,
	ExpenseCategoryGroceries,
	ExpenseCategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCreditCard    PaymentMethod = "Credit Card"
	PaymentMethodDebitCard     PaymentMethod = "Debit Card"
	PaymentMethodCash          PaymentMethod = "Cash"
	PaymentMethodBankTransfer  PaymentMethod = "Bank Transfer"
	PaymentMethodDigitalWallet PaymentMethod = "Digital Wallet"
)

// IsValid reports whether m is one of the known payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash,
		PaymentMethodBankTransfer, PaymentMethodDigitalWallet:
		return true
	}
	return false
}
