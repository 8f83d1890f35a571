package domain

import "time"

// Material is a sheet-goods catalog record priced per square meter.
type Material struct {
	ID          string
	Name        string
	Category    string
	CostPerSqm  float64
	WasteFactor *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is a purchased hardware catalog record priced per unit.
type Product struct {
	ID        string
	Name      string
	UnitPrice float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
