package models

type Route struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null;size:255"`
	Description string  `json:"description" gorm:"size:1000"`
	DistanceKm  float64 `json:"distance_km"`

	// Checkpoints are owned by the route and always read back ascending
	// by sequence order.
	Checkpoints []Checkpoint `json:"checkpoints" gorm:"foreignKey:RouteID"`
}

type Checkpoint struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	RouteID       uint    `json:"route_id" gorm:"not null;uniqueIndex:idx_checkpoints_route_seq"`
	SequenceOrder int     `json:"sequence_order" gorm:"not null;uniqueIndex:idx_checkpoints_route_seq"`
	Latitude      float64 `json:"latitude" gorm:"not null"`
	Longitude     float64 `json:"longitude" gorm:"not null"`
}
