package model

import "github.com/pkg/errors"

// Instant is a civil local timestamp plus the geographic location used to
// resolve its time zone.
type Instant struct {
	Year, Month, Day      int
	Hour, Minute, Second  int
	LatDeg, LonDeg        float64 // birth location, used only for zone resolution
}

// Validate checks the civil tuple and location bounds. It does not check
// that the calendar date actually exists, and neither does
// timescale.ToJulianDate (a day past the end of its month, such as
// February 31, rolls over into the next month); Validate only rejects
// values with no meaningful interpretation.
func (in Instant) Validate() error {
	switch {
	case in.Month < 1 || in.Month > 12:
		return errors.Errorf("model: month %d out of range [1,12]", in.Month)
	case in.Day < 1 || in.Day > 31:
		return errors.Errorf("model: day %d out of range [1,31]", in.Day)
	case in.Hour < 0 || in.Hour > 23:
		return errors.Errorf("model: hour %d out of range [0,23]", in.Hour)
	case in.Minute < 0 || in.Minute > 59:
		return errors.Errorf("model: minute %d out of range [0,59]", in.Minute)
	case in.Second < 0 || in.Second > 59:
		return errors.Errorf("model: second %d out of range [0,59]", in.Second)
	case in.LatDeg < -90 || in.LatDeg > 90:
		return errors.Errorf("model: latitude %f out of range [-90,90]", in.LatDeg)
	case in.LonDeg < -180 || in.LonDeg > 180:
		return errors.Errorf("model: longitude %f out of range [-180,180]", in.LonDeg)
	}
	return nil
}
