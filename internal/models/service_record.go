package models

// ServiceRecord links one car to one service on a given date.
type ServiceRecord struct {
	RecordNumber uint   `json:"RecordNumber" gorm:"primaryKey;autoIncrement"`
	ServiceDate  string `json:"ServiceDate"`
	PlateNumber  string `json:"PlateNumber" gorm:"index"`
	ServiceCode  string `json:"ServiceCode" gorm:"index"`
}

func (ServiceRecord) TableName() string { return "ServiceRecord" }
