package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardSnapshot is the aggregate view of a caller's finances.
type DashboardSnapshot struct {
	Balance       decimal.Decimal  `json:"balance"`       // All-time income minus expenses
	Cashflow30d   decimal.Decimal  `json:"cashflow30d"`   // Net cashflow of the last 30 days
	Cashflow90d   decimal.Decimal  `json:"cashflow90d"`   // Net cashflow of the last 90 days
	UpcomingBills int64            `json:"upcomingBills"` // Count of future-dated expenses
	Budgets       []BudgetProgress `json:"budgets"`
}

// BudgetProgress is a budget with its derived usage values.
//
// Progress is the raw ratio and may exceed 100 to signal overspend,
// ProgressClamped is limited to 100 for display. Used and Target are
// always unclamped.
type BudgetProgress struct {
	Budget
	Used            decimal.Decimal `json:"used"`
	Progress        int64           `json:"progress"`
	ProgressClamped int64           `json:"progressClamped"`
}

type budgetUsage struct {
	BudgetID uuid.UUID
	Used     decimal.Decimal
}

// Snapshot computes the dashboard snapshot for a user.
//
// Admins see all records system-wide, every other role only sees
// their own records.
func Snapshot(db *gorm.DB, userID uuid.UUID, role Role, now time.Time) (DashboardSnapshot, error) {
	snapshot := DashboardSnapshot{
		Budgets: []BudgetProgress{},
	}

	q := db.Order("datetime(transactions.date) DESC")
	if role != RoleAdmin {
		q = q.Where("transactions.user_id = ?", userID)
	}

	var transactions []Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return DashboardSnapshot{}, err
	}

	// Both window boundaries are inclusive: a transaction dated exactly
	// 30 days ago counts towards the 30 day cashflow.
	cut30 := now.AddDate(0, 0, -30)
	cut90 := now.AddDate(0, 0, -90)

	for _, t := range transactions {
		amount := t.Amount
		if t.Type == TypeExpense {
			amount = amount.Neg()

			if t.Date.After(now) {
				snapshot.UpcomingBills++
			}
		}

		snapshot.Balance = snapshot.Balance.Add(amount)

		if !t.Date.Before(cut30) {
			snapshot.Cashflow30d = snapshot.Cashflow30d.Add(amount)
		}

		if !t.Date.Before(cut90) {
			snapshot.Cashflow90d = snapshot.Cashflow90d.Add(amount)
		}
	}

	budgets, err := budgetProgress(db, userID, role)
	if err != nil {
		return DashboardSnapshot{}, err
	}
	snapshot.Budgets = budgets

	return snapshot, nil
}

// budgetProgress computes the usage for all scoped budgets with a single
// query joining the matching expense transactions, grouped by budget.
func budgetProgress(db *gorm.DB, userID uuid.UUID, role Role) ([]BudgetProgress, error) {
	scope := db
	if role != RoleAdmin {
		scope = scope.Where("budgets.user_id = ?", userID)
	}

	var budgets []Budget
	err := scope.Order("datetime(budgets.created_at) ASC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	// The transactions table is joined manually, so the soft-delete
	// condition needs to be part of the join.
	join := "LEFT JOIN transactions ON transactions.category_id = budgets.category_id" +
		" AND transactions.type = 'expense'" +
		" AND transactions.deleted_at IS NULL" +
		" AND datetime(transactions.date) >= datetime(budgets.start_date)" +
		" AND datetime(transactions.date) <= datetime(budgets.end_date)"
	if role != RoleAdmin {
		join += " AND transactions.user_id = budgets.user_id"
	}

	usageQuery := db.Model(&Budget{}).
		Select("budgets.id AS budget_id, COALESCE(SUM(transactions.amount), 0) AS used").
		Joins(join).
		Group("budgets.id")
	if role != RoleAdmin {
		usageQuery = usageQuery.Where("budgets.user_id = ?", userID)
	}

	var usages []budgetUsage
	err = usageQuery.Scan(&usages).Error
	if err != nil {
		return nil, err
	}

	used := make(map[uuid.UUID]decimal.Decimal, len(usages))
	for _, usage := range usages {
		used[usage.BudgetID] = usage.Used
	}

	progress := make([]BudgetProgress, 0, len(budgets))
	for _, budget := range budgets {
		p := BudgetProgress{
			Budget: budget,
			Used:   used[budget.ID],
		}

		// A budget without a target has no meaningful ratio
		if !budget.Target.IsZero() {
			p.Progress = p.Used.Div(budget.Target).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
			p.ProgressClamped = p.Progress
			if p.ProgressClamped > 100 {
				p.ProgressClamped = 100
			}
		}

		progress = append(progress, p)
	}

	return progress, nil
}
