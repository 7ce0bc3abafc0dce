package domain

import (
	"time"
)

// CREATE TABLE public.compset_rates (
//     dt    DATE,
//     hotel VARCHAR(80),
//     price NUMERIC,
//     PRIMARY KEY (dt, hotel)
// );

// CompetitorRate is a single observed competitor price. Rates are only ever
// consumed in aggregate (percentile bands), never row by row.
type CompetitorRate struct {
	Date  time.Time `gorm:"column:dt;primaryKey;type:date" json:"date"`
	Hotel string    `gorm:"column:hotel;primaryKey;type:varchar(80)" json:"hotel"`
	Price float64   `gorm:"column:price;type:numeric" json:"price"`
}

func (CompetitorRate) TableName() string {
	return "compset_rates"
}
