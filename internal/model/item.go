package model

// Item is a note row in the items table. Nil fields are stored as NULL.
type Item struct {
	ID       int64   `gorm:"column:item_id;primaryKey;autoIncrement"`
	Title    *string `gorm:"column:item_title;size:100"`
	Category *string `gorm:"column:item_category;size:10"`
	Content  *string `gorm:"column:item_content;type:text"`
	UserID   *int64  `gorm:"column:item_user_id;index"`

	// Owner only declares the foreign key; it is never preloaded.
	Owner *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION"`
}

// TableName returns the database table name for the Item model.
func (Item) TableName() string {
	return "items"
}
