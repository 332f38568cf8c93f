package dbmodels

type Employee struct {
	BaseModel
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255);index" json:"email"`
	Phone string `gorm:"type:varchar(50)" json:"phone"`
	Role  string `gorm:"type:varchar(100)" json:"role"` // должность / роль в студии
}
