package model

import "fmt"

// CropEntry names a cultivation profile in the catalog. IDs are 1-based and
// unique; list order is display order only.
type CropEntry struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// CropParameters holds the optimal ranges for a crop. Exactly one instance is
// active at a time; it is overwritten whole when a new selection is confirmed.
type CropParameters struct {
	MinTemp     float64 `json:"min_temp"`     // °C
	MaxTemp     float64 `json:"max_temp"`     // °C
	MinHumidity float64 `json:"min_humidity"` // %
	MaxHumidity float64 `json:"max_humidity"` // %
}

// Validate checks the parameter-set invariants: ordered temperature band and
// humidity band inside [0, 100].
func (p CropParameters) Validate() error {
	if p.MinTemp > p.MaxTemp {
		return fmt.Errorf("min temp %.1f above max temp %.1f", p.MinTemp, p.MaxTemp)
	}
	if p.MinHumidity < 0 || p.MaxHumidity > 100 || p.MinHumidity > p.MaxHumidity {
		return fmt.Errorf("humidity band %.1f..%.1f outside 0..100", p.MinHumidity, p.MaxHumidity)
	}
	return nil
}
