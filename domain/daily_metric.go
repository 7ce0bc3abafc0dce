package domain

import (
	"time"
)

// CREATE TABLE public.bookings_daily (
//     dt              DATE PRIMARY KEY,
//     rooms_sold      INT,
//     rooms_available INT,
//     adr             NUMERIC,
//     revenue         NUMERIC,
//     occupancy_rate  NUMERIC
// );

// DailyMetric is one row of observed hotel performance. Rows are always
// handled in ascending date order; lag and rolling features downstream
// depend on it.
type DailyMetric struct {
	Date           time.Time `gorm:"column:dt;primaryKey;type:date" json:"date"`
	RoomsSold      int       `gorm:"column:rooms_sold" json:"rooms_sold"`
	RoomsAvailable int       `gorm:"column:rooms_available" json:"rooms_available"`
	ADR            float64   `gorm:"column:adr;type:numeric" json:"adr"`
	Revenue        float64   `gorm:"column:revenue;type:numeric" json:"revenue"`
	OccupancyRate  float64   `gorm:"column:occupancy_rate;type:numeric" json:"occupancy_rate"`
}

func (DailyMetric) TableName() string {
	return "bookings_daily"
}

// RevPAR is revenue per available room.
func (m DailyMetric) RevPAR() float64 {
	if m.RoomsAvailable == 0 {
		return 0
	}
	return m.Revenue / float64(m.RoomsAvailable)
}
