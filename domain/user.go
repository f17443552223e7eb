package domain

import "time"

// UserType defines the kinds of accounts that exist
type UserType string

const (
	UserTypeNormal UserType = "normal"
	UserTypeAdmin  UserType = "admin"
)

// User represents a traveller account
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100" json:"firstName"`
	LastName  string    `gorm:"size:100" json:"lastName"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Phone     string    `gorm:"size:32" json:"phone,omitempty"`
	Avatar    string    `gorm:"type:mediumtext" json:"avatar,omitempty"`
	UserType  UserType  `gorm:"type:varchar(20);default:'normal'" json:"userType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the MySQL table name
func (User) TableName() string {
	return "users"
}
