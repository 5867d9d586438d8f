package model

// User is an account row in the users table.
// Password is stored and compared as given.
type User struct {
	ID       int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:user_name;size:30;uniqueIndex;not null"`
	Email    string `gorm:"column:user_email;size:50;not null"`
	Password string `gorm:"column:user_password;size:100;not null"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
