package user

const UsersTableName = "users"

// UserModel represents a row in the users table
type UserModel struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	UserName string `gorm:"column:user_name;type:varchar(50)" json:"username"`
	Password string `gorm:"type:varchar(50)" json:"password"`
}

func (UserModel) TableName() string {
	return UsersTableName
}

// User is the wire shape returned by GET /users
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse reports the outcome of a user creation
type UserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
