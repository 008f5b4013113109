package model

// Category represents the database model for spending categories
type Category struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Type        string `gorm:"not null;size:50;uniqueIndex:idx_categories_type"`
	DisplayName string `gorm:"not null;size:100"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
