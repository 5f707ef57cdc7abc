package models

// Service is a single offering (oil change, full wash, ...) priced per car.
type Service struct {
	ServiceCode  string  `json:"ServiceCode" gorm:"primaryKey;size:20"`
	ServiceName  string  `json:"ServiceName"`
	ServicePrice float64 `json:"ServicePrice"`
}

func (Service) TableName() string { return "Services" }
