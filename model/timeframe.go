package model

// TimeFrame bundles the three Julian Date scales derived once per instant
// and then treated as immutable.
//
// Invariants (enforced by the timescale package, not here):
//
//	JDUT1 - JDUTC = DUT1/86400, |DUT1| <= 0.9s
//	JDTT  - JDUT1 = DeltaT/86400, DeltaT >= 0 for modern dates
type TimeFrame struct {
	JDUTC float64 `json:"jd_utc"`
	JDUT1 float64 `json:"jd_ut1"`
	JDTT  float64 `json:"jd_tt"`
}
