package models

// Package is a bundled wash offering. Read-only on the API surface;
// rows are maintained directly in the database.
type Package struct {
	PackageNumber      uint    `json:"PackageNumber" gorm:"primaryKey;autoIncrement"`
	PackageName        string  `json:"PackageName"`
	PackageDescription string  `json:"PackageDescription"`
	PackagePrice       float64 `json:"PackagePrice"`
}

func (Package) TableName() string { return "Package" }
