package models

// Location - географическая точка в градусах WGS84
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
