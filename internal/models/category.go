package models

// Category represents a category row. The hierarchy is flat in storage;
// ParentID is empty for roots and tree assembly happens in the service layer.
type Category struct {
	CategoryID  string `db:"category_id"`
	UserID      string `db:"user_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	SortOrder   int    `db:"sort_order"`
	ParentID    string `db:"parent_id"` // Nullable
	AuditFields
}
