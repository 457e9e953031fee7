package models

// Revenue is one month of the revenue chart; Month is a unique 3-letter code.
type Revenue struct {
	Month   string `gorm:"type:varchar(4);not null;unique" json:"month"`
	Revenue int    `gorm:"type:int;not null" json:"revenue"`
}

func (Revenue) TableName() string { return "revenue" }
