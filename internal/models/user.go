package models

type Role string

const (
	RoleClient string = "client"
	RoleAdmin  string = "admin"
)

type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
	Role         string `gorm:"default:'client'" json:"role"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// SetRole sets the user role.
func (u *User) SetRole(role Role) {
	u.Role = string(role)
}

// TableName sets the table name in the DB
func (User) TableName() string {
	return "users"
}
