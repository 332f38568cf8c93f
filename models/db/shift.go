package dbmodels

type Shift struct {
	BaseModel
	EmployeeID *int64    `gorm:"index" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Date       string    `gorm:"type:date;index;not null" json:"date"` // YYYY-MM-DD, по нему выбирается неделя
	StartTime  string    `gorm:"type:varchar(8)" json:"start_time"`
	EndTime    string    `gorm:"type:varchar(8)" json:"end_time"`
	Notes      string    `json:"notes"`
}
