// Package catalog holds the static category and account catalogs.
package catalog

// Category is an entry of the static category catalog.
type Category struct {
	ID   string `json:"id" example:"food"`
	Name string `json:"name" example:"Food"`
	Icon string `json:"icon" example:"🍔"`
}

// Categories returns the static category catalog.
func Categories() []Category {
	return []Category{
		{ID: "income", Name: "Income", Icon: "💰"},
		{ID: "salary", Name: "Salary", Icon: "💼"},
		{ID: "freelance", Name: "Freelance", Icon: "🎯"},
		{ID: "investment", Name: "Investment", Icon: "📈"},
		{ID: "other_income", Name: "Other Income", Icon: "💵"},
		{ID: "expense", Name: "General", Icon: "📦"},
		{ID: "food", Name: "Food", Icon: "🍔"},
		{ID: "transport", Name: "Transport", Icon: "🚗"},
		{ID: "utilities", Name: "Utilities", Icon: "💡"},
		{ID: "entertainment", Name: "Entertainment", Icon: "🎬"},
		{ID: "shopping", Name: "Shopping", Icon: "🛍️"},
		{ID: "healthcare", Name: "Healthcare", Icon: "🏥"},
		{ID: "education", Name: "Education", Icon: "📚"},
		{ID: "rent", Name: "Rent", Icon: "🏠"},
		{ID: "insurance", Name: "Insurance", Icon: "🛡️"},
		{ID: "tax", Name: "Tax", Icon: "📄"},
		{ID: "office", Name: "Office", Icon: "🏢"},
		{ID: "marketing", Name: "Marketing", Icon: "📢"},
		{ID: "travel", Name: "Travel", Icon: "✈️"},
		{ID: "subscription", Name: "Subscription", Icon: "🔔"},
	}
}

// Accounts returns the static account label catalog.
func Accounts() []string {
	return []string{"Cash", "Bank", "Credit Card", "PayPal", "UPI", "Net Banking"}
}
