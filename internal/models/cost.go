package models

import "time"

type Cost struct {
	BaseModel
	Category    CostCategory `gorm:"type:varchar(20);not null" json:"category"`
	Amount      int          `gorm:"not null;check:amount >= 0" json:"amount"`
	Description string       `gorm:"type:text" json:"description"`
	Date        time.Time    `gorm:"type:date;not null" json:"date"`
	// Признак регулярной (ежемесячной) статьи расходов
	IsRecurring bool `gorm:"default:false" json:"isRecurring"`
}

func (Cost) TableName() string {
	return "costs"
}
