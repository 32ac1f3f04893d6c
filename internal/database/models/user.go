package models

// User represents a registered member of the temple or youth program
type User struct {
	BaseModel
	FullName     string   `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email        string   `json:"email" gorm:"size:120;uniqueIndex;not null" validate:"required,email"`
	Phone        string   `json:"phone" gorm:"size:20" validate:"max=20"`
	PasswordHash string   `json:"-" gorm:"size:100;not null"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'guest'" validate:"required"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
