package model

// All returns every model that must be migrated for the ledger schema.
func All() []interface{} {
	return []interface{}{
		&ExpenseModel{},
		&IncomeModel{},
		&BudgetModel{},
		&GoalModel{},
		&InvestmentModel{},
		&LoanModel{},
	}
}
