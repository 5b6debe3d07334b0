package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// SQLLedgerStore keeps the ledger in a relational database through GORM.
// The expense/budget write and loan updates each run inside one transaction.
type SQLLedgerStore struct {
	db *gorm.DB
}

// NewSQLLedgerStore creates a store over an already migrated database.
func NewSQLLedgerStore(db *gorm.DB) *SQLLedgerStore {
	return &SQLLedgerStore{
		db: db,
	}
}

// CreateExpense inserts the expense and charges it to matching budgets in one transaction.
func (s *SQLLedgerStore) CreateExpense(ctx context.Context, expense *entity.Expense) ([]*entity.Budget, error) {
	var touched []*entity.Budget

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ExpenseFromEntity(expense)).Error; err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		var budgetModels []model.BudgetModel
		if err := tx.Where("category = ?", string(expense.Category)).Order("seq ASC").Find(&budgetModels).Error; err != nil {
			return fmt.Errorf("failed to load budgets: %w", err)
		}

		touched = make([]*entity.Budget, 0, len(budgetModels))
		for _, bm := range budgetModels {
			budget := bm.ToEntity()
			budget.Record(expense.Amount)

			if err := tx.Model(&model.BudgetModel{}).
				Where("seq = ?", bm.Seq).
				Update("spent", budget.Spent).Error; err != nil {
				return fmt.Errorf("failed to update budget spend: %w", err)
			}
			touched = append(touched, budget)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return touched, nil
}

// ListExpenses returns every expense in insertion order.
func (s *SQLLedgerStore) ListExpenses(ctx context.Context) ([]*entity.Expense, error) {
	return listExpenses(s.db.WithContext(ctx))
}

// CreateIncome inserts an income entry.
func (s *SQLLedgerStore) CreateIncome(ctx context.Context, income *entity.Income) error {
	return s.db.WithContext(ctx).Create(model.IncomeFromEntity(income)).Error
}

// ListIncome returns every income entry in insertion order.
func (s *SQLLedgerStore) ListIncome(ctx context.Context) ([]*entity.Income, error) {
	return listIncome(s.db.WithContext(ctx))
}

// CreateBudget inserts a budget.
func (s *SQLLedgerStore) CreateBudget(ctx context.Context, budget *entity.Budget) error {
	return s.db.WithContext(ctx).Create(model.BudgetFromEntity(budget)).Error
}

// ListBudgets returns every budget in insertion order.
func (s *SQLLedgerStore) ListBudgets(ctx context.Context) ([]*entity.Budget, error) {
	return listBudgets(s.db.WithContext(ctx))
}

// CreateGoal inserts a goal.
func (s *SQLLedgerStore) CreateGoal(ctx context.Context, goal *entity.Goal) error {
	return s.db.WithContext(ctx).Create(model.GoalFromEntity(goal)).Error
}

// ListGoals returns every goal in insertion order.
func (s *SQLLedgerStore) ListGoals(ctx context.Context) ([]*entity.Goal, error) {
	return listGoals(s.db.WithContext(ctx))
}

// CreateInvestment inserts an investment.
func (s *SQLLedgerStore) CreateInvestment(ctx context.Context, investment *entity.Investment) error {
	return s.db.WithContext(ctx).Create(model.InvestmentFromEntity(investment)).Error
}

// ListInvestments returns every investment in insertion order.
func (s *SQLLedgerStore) ListInvestments(ctx context.Context) ([]*entity.Investment, error) {
	return listInvestments(s.db.WithContext(ctx))
}

// CreateLoan inserts a loan.
func (s *SQLLedgerStore) CreateLoan(ctx context.Context, loan *entity.Loan) error {
	return s.db.WithContext(ctx).Create(model.LoanFromEntity(loan)).Error
}

// FindLoanByID retrieves a loan by its ID.
func (s *SQLLedgerStore) FindLoanByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error) {
	var loanModel model.LoanModel
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&loanModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, unknownLoan(id)
		}
		return nil, result.Error
	}
	return loanModel.ToEntity(), nil
}

// UpdateLoan loads, mutates and saves a loan inside one transaction.
func (s *SQLLedgerStore) UpdateLoan(
	ctx context.Context,
	id uuid.UUID,
	mutate func(loan *entity.Loan) error,
) (*entity.Loan, error) {
	var updated *entity.Loan

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var loanModel model.LoanModel
		if err := tx.Where("id = ?", id).First(&loanModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return unknownLoan(id)
			}
			return err
		}

		loan := loanModel.ToEntity()
		if err := mutate(loan); err != nil {
			return err
		}

		if err := tx.Model(&model.LoanModel{}).
			Where("seq = ?", loanModel.Seq).
			Updates(map[string]interface{}{
				"remaining_amount": loan.RemainingAmount,
				"status":           string(loan.Status),
				"updated_at":       loan.UpdatedAt,
			}).Error; err != nil {
			return fmt.Errorf("failed to update loan: %w", err)
		}

		updated = loan
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ListLoans returns every loan in insertion order.
func (s *SQLLedgerStore) ListLoans(ctx context.Context) ([]*entity.Loan, error) {
	return listLoans(s.db.WithContext(ctx))
}

// Snapshot reads every table inside one transaction.
func (s *SQLLedgerStore) Snapshot(ctx context.Context) (*entity.LedgerSnapshot, error) {
	snapshot := &entity.LedgerSnapshot{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if snapshot.Expenses, err = listExpenses(tx); err != nil {
			return err
		}
		if snapshot.Income, err = listIncome(tx); err != nil {
			return err
		}
		if snapshot.Budgets, err = listBudgets(tx); err != nil {
			return err
		}
		if snapshot.Goals, err = listGoals(tx); err != nil {
			return err
		}
		if snapshot.Investments, err = listInvestments(tx); err != nil {
			return err
		}
		snapshot.Loans, err = listLoans(tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}

	return snapshot, nil
}

// HealthCheck pings the database.
func (s *SQLLedgerStore) HealthCheck() bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}

// Close closes the underlying connection pool.
func (s *SQLLedgerStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	return sqlDB.Close()
}

func listExpenses(db *gorm.DB) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	if err := db.Order("seq ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses, nil
}

func listIncome(db *gorm.DB) ([]*entity.Income, error) {
	var models []model.IncomeModel
	if err := db.Order("seq ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	income := make([]*entity.Income, len(models))
	for i := range models {
		income[i] = models[i].ToEntity()
	}
	return income, nil
}

func listBudgets(db *gorm.DB) ([]*entity.Budget, error) {
	var models []model.BudgetModel
	if err := db.Order("seq ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	budgets := make([]*entity.Budget, len(models))
	for i := range models {
		budgets[i] = models[i].ToEntity()
	}
	return budgets, nil
}

func listGoals(db *gorm.DB) ([]*entity.Goal, error) {
	var models []model.GoalModel
	if err := db.Order("seq ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	goals := make([]*entity.Goal, len(models))
	for i := range models {
		goals[i] = models[i].ToEntity()
	}
	return goals, nil
}

func listInvestments(db *gorm.DB) ([]*entity.Investment, error) {
	var models []model.InvestmentModel
	if err := db.Order("seq ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	investments := make([]*entity.Investment, len(models))
	for i := range models {
		investments[i] = models[i].ToEntity()
	}
	return investments, nil
}

func listLoans(db *gorm.DB) ([]*entity.Loan, error) {
	var models []model.LoanModel
	if err := db.Order("seq ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	loans := make([]*entity.Loan, len(models))
	for i := range models {
		loans[i] = models[i].ToEntity()
	}
	return loans, nil
}
