package models

// Salary is one payroll line for an employee. EmployeNumber keeps the
// schema's spelling of the employee reference.
type Salary struct {
	ID              uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	GlossSalary     float64 `json:"glossSalary"`
	TotalDeducation float64 `json:"totalDeducation"`
	NetSalary       float64 `json:"netSalary"`
	EmployeNumber   int     `json:"employeNumber" gorm:"index"`
}

func (Salary) TableName() string { return "salary" }
