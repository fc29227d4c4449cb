package entity

import "time"

// Distribution cost types.
const (
	DistributionCostTransport  = "TRANSPORT"
	DistributionCostFuel       = "FUEL"
	DistributionCostPackaging  = "PACKAGING"
	DistributionCostLabor      = "LABOR"
	DistributionCostMaintenace = "MAINTENANCE"
	DistributionCostOther      = "OTHER"
)

// DistributionCost records one delivery-related expense, optionally tied to a
// procurement plan's period for reporting.
type DistributionCost struct {
	ID     string  `json:"id" gorm:"primaryKey;size:36"`
	SppgID string  `json:"sppg_id" gorm:"size:36;not null;index"`
	PlanID *string `json:"plan_id" gorm:"size:36;index"`

	CostType    string    `json:"cost_type" gorm:"size:20;not null"`
	Description string    `json:"description" gorm:"size:500"`
	Amount      float64   `json:"amount" gorm:"type:decimal(15,2);not null"`
	CostDate    time.Time `json:"cost_date" gorm:"type:date;not null;index"`

	VehicleID  *string `json:"vehicle_id" gorm:"size:36"`
	RouteName  string  `json:"route_name" gorm:"size:200"`
	DistanceKm float64 `json:"distance_km" gorm:"type:decimal(10,2);default:0"`

	CreatedBy string     `json:"created_by" gorm:"size:36"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (DistributionCost) TableName() string {
	return "distribution_costs"
}
