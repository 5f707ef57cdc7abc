package models

type Employee struct {
	EmployeeNumber int    `json:"employeeNumber" gorm:"primaryKey;autoIncrement:false"`
	FirstNames     string `json:"FirstNames"`
	LastName       string `json:"LastName"`
	Position       string `json:"position"`
	Gender         string `json:"gender"`
	Telephone      string `json:"telephone"`
	Address        string `json:"address"`
	HiredDate      string `json:"hiredDate"`
}

func (Employee) TableName() string { return "employee" }
