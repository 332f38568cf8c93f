package dbmodels

import "time"

type Appointment struct {
	BaseModel
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	StartTime  time.Time `gorm:"index;not null" json:"start_time"`
	EndTime    time.Time `gorm:"not null" json:"end_time"`
	EmployeeID *int64    `gorm:"index" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}
