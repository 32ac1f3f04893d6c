package models

// Program represents a temple or youth program that users enroll in
type Program struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;uniqueIndex;not null" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:ProgramID"`
	Sessions    []Session    `json:"sessions,omitempty" gorm:"foreignKey:ProgramID"`
}

// TableName returns the table name for Program
func (Program) TableName() string {
	return "programs"
}
