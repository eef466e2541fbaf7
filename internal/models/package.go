package models

import "gorm.io/datatypes"

type Package struct {
	BaseModel
	Name  string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Price int    `gorm:"not null;check:price >= 0" json:"price"`
	// Features хранится как JSONB-массив строк
	Features     datatypes.JSON `gorm:"not null" json:"features"`
	WorkDays     int            `gorm:"not null" json:"workDays"`
	Revisions    int            `gorm:"not null" json:"revisions"`
	IsActive     bool           `gorm:"default:true" json:"isActive"`
	DisplayOrder int            `gorm:"default:0" json:"displayOrder"`
	Badge        string         `gorm:"type:varchar(20)" json:"badge"`
}

func (Package) TableName() string {
	return "packages"
}
