package models

import "time"

// ServicePackage links one car to one package. ServiceDate is set by the
// server at creation time.
type ServicePackage struct {
	RecordNumber  uint      `json:"RecordNumber" gorm:"primaryKey;autoIncrement"`
	PlateNumber   string    `json:"PlateNumber" gorm:"index"`
	PackageNumber uint      `json:"PackageNumber" gorm:"index"`
	ServiceDate   time.Time `json:"ServiceDate" gorm:"autoCreateTime"`
}

func (ServicePackage) TableName() string { return "ServicePackage" }
