package models

// User holds login credentials. Password stores a bcrypt hash and is never
// serialized into responses.
type User struct {
	UserID   uint   `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"unique"`
	Password string `json:"-"`
}

func (User) TableName() string { return "users" }
