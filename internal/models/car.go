package models

// Car is keyed by its plate number, which the caller supplies on create.
type Car struct {
	PlateNumber string `json:"PlateNumber" gorm:"primaryKey;size:20"`
	CarType     string `json:"CarType"`
	CarSize     string `json:"CarSize"`
	DriverName  string `json:"DriverName"`
	PhoneNumber string `json:"PhoneNumber"`
}

func (Car) TableName() string { return "Car" }
