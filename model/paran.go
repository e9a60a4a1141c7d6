package model

// Paran is the geographic latitude at which two angular events occur
// simultaneously.
type Paran struct {
	Body1            Body     `json:"body_1"`
	Body2            Body     `json:"body_2"`
	Angle1           LineKind `json:"angle_1"`
	Angle2           LineKind `json:"angle_2"`
	LatDeg           float64  `json:"lat_deg"`
	LonDeg           float64  `json:"lon_deg"` // optional; 0 when not meaningful
	HasLon           bool     `json:"has_lon"`
	IsLatitudeCircle bool     `json:"is_latitude_circle"` // the |Δlon| < 2° meridian-meridian degenerate case
}
