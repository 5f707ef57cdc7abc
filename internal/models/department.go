package models

type Department struct {
	DepartmentCode int     `json:"departmentCode" gorm:"primaryKey;autoIncrement:false"`
	DepartmentName string  `json:"departmentName"`
	GlossSalary    float64 `json:"glossSalary"`
}

func (Department) TableName() string { return "department" }
