// Package timescale converts civil calendar instants into the Julian Date
// time scales the ephemeris and frame code need: UTC, UT1 and TT, chained
// UTC -> TT -> UT1 the way almanac software does it (ESAA §3.2).
//
// This package models DUT1 and Delta T from published secular tables rather
// than fetching a live IERS bulletin — appropriate for a standalone library
// with no network dependency, and explicitly called out as an accepted
// precision tradeoff (see DESIGN.md).
package timescale

import (
	"math"
	"time"

	"github.com/harshasoftware/halohome/model"
	"github.com/pkg/errors"
)

// SecPerDay is the number of SI seconds in a civil day.
const SecPerDay = 86400.0

// TAI - UTC leap second table (IERS bulletins, 1972-01-01 through the last
// leap second inserted on 2017-01-01). Values after the last row are held
// at the final offset — there is no mechanism to predict future leap
// seconds, so this is the documented precision ceiling for dates beyond
// the table (DESIGN.md).
type leapEntry struct {
	jd     float64
	offset float64
}

var leapTable = []leapEntry{
	{2441317.5, 10}, // 1972-01-01
	{2441499.5, 11}, // 1972-07-01
	{2441683.5, 12}, // 1973-01-01
	{2442048.5, 13}, // 1974-01-01
	{2442413.5, 14}, // 1975-01-01
	{2442778.5, 15}, // 1976-01-01
	{2443144.5, 16}, // 1977-01-01
	{2443509.5, 17}, // 1978-01-01
	{2443874.5, 18}, // 1979-01-01
	{2444239.5, 19}, // 1980-01-01
	{2444786.5, 20}, // 1981-07-01
	{2445151.5, 21}, // 1982-07-01
	{2445516.5, 22}, // 1983-07-01
	{2446247.5, 23}, // 1985-07-01
	{2447161.5, 24}, // 1988-01-01
	{2447892.5, 25}, // 1990-01-01
	{2448257.5, 26}, // 1991-01-01
	{2448804.5, 27}, // 1992-07-01
	{2449169.5, 28}, // 1993-07-01
	{2449534.5, 29}, // 1994-07-01
	{2450083.5, 30}, // 1996-01-01
	{2450630.5, 31}, // 1997-07-01
	{2451179.5, 32}, // 1999-01-01
	{2453736.5, 33}, // 2006-01-01
	{2454832.5, 34}, // 2009-01-01
	{2456109.5, 35}, // 2012-07-01
	{2457204.5, 36}, // 2015-07-01
	{2457754.5, 37}, // 2017-01-01
}

// LeapSecondOffset returns TAI - UTC in seconds for the given UTC Julian
// Date. Dates before the table's first entry return the initial offset;
// dates after the last entry return the latest known offset.
func LeapSecondOffset(jdUTC float64) float64 {
	if jdUTC < leapTable[0].jd {
		return leapTable[0].offset
	}
	for i := len(leapTable) - 1; i >= 0; i-- {
		if jdUTC >= leapTable[i].jd {
			return leapTable[i].offset
		}
	}
	return leapTable[0].offset
}

// deltaTEntry is one (year, DeltaT-in-seconds) anchor of the secular
// Delta T = TT - UT1 model, after Morrison & Stephenson / Espenak-Meeus,
// "Polynomial Expressions for Delta T". Entries beyond 2000 are the
// published long-term parabolic projection, not measurement.
type deltaTEntry struct {
	year float64
	dt   float64
}

var deltaTTable = []deltaTEntry{
	{1800, 18.367},
	{1820, 11.22},
	{1850, 7.86},
	{1875, -1.04},
	{1900, -2.79},
	{1920, 21.16},
	{1950, 29.07},
	{1970, 40.18},
	{1990, 56.86},
	{2000, 63.829},
	{2020, 72.0},
	{2050, 93.0},
	{2100, 202.0},
	{2150, 320.0},
	{2200, 440.0},
}

// DeltaT returns an estimate of Delta T = TT - UT1, in seconds, for a
// fractional Julian year. Outside the table it clamps to the nearest
// boundary entry rather than extrapolating linearly off the end.
func DeltaT(year float64) float64 {
	n := len(deltaTTable)
	if year <= deltaTTable[0].year {
		return deltaTTable[0].dt
	}
	if year >= deltaTTable[n-1].year {
		return deltaTTable[n-1].dt
	}
	for i := 0; i < n-1; i++ {
		lo, hi := deltaTTable[i], deltaTTable[i+1]
		if year >= lo.year && year <= hi.year {
			frac := (year - lo.year) / (hi.year - lo.year)
			return lo.dt + frac*(hi.dt-lo.dt)
		}
	}
	return deltaTTable[n-1].dt
}

// ToJulianDate converts a proleptic Gregorian calendar date and
// fractional hour of day into a Julian Date, after Meeus ch.7.
func ToJulianDate(year, month, day int, hour float64) float64 {
	y, m := float64(year), float64(month)
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)
	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(day) + b - 1524.5
	return jd + hour/24.0
}

// JDToCalendar is the Meeus ch.7 inverse of ToJulianDate, returning the
// proleptic Gregorian calendar date and fractional hour of day.
func JDToCalendar(jd float64) (year, month, day int, hour float64) {
	jd += 0.5
	z := math.Floor(jd)
	f := jd - z
	var a float64
	if z < 2299161 {
		a = z
	} else {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	dayF := b - d - math.Floor(30.6001*e) + f
	day = int(math.Floor(dayF))
	hour = (dayF - math.Floor(dayF)) * 24.0

	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}
	return
}

// FromTime converts a UTC time.Time into a Julian Date. Non-UTC values are
// converted to UTC first.
func FromTime(t time.Time) float64 {
	u := t.UTC()
	hour := float64(u.Hour()) + float64(u.Minute())/60.0 + (float64(u.Second())+float64(u.Nanosecond())/1e9)/3600.0
	return ToJulianDate(u.Year(), int(u.Month()), u.Day(), hour)
}

// DUT1 returns the modeled UT1 - UTC offset in seconds, derived from the
// leap-second and Delta T tables: (TAI-UTC + 32.184) - DeltaT. This is a
// secular estimate and is not expected to track the sub-second IERS
// bulletin value for recent dates.
func DUT1(jdUTC float64) float64 {
	year := 2000.0 + (jdUTC-2451545.0)/365.25
	ttMinusUTC := LeapSecondOffset(jdUTC) + 32.184
	return ttMinusUTC - DeltaT(year)
}

// UTToTT returns JD_TT for a given JD_UTC, applying TAI-UTC leap seconds
// plus the fixed TT-TAI offset of 32.184s.
func UTToTT(jdUTC float64) float64 {
	offsetSec := LeapSecondOffset(jdUTC) + 32.184
	return jdUTC + offsetSec/SecPerDay
}

// TTToUT1 returns JD_UT1 for a given JD_TT via the modeled Delta T.
func TTToUT1(jdTT float64) float64 {
	year := 2000.0 + (jdTT-2451545.0)/365.25
	return jdTT - DeltaT(year)/SecPerDay
}

// TDBMinusTT returns TDB - TT in seconds (Explanatory Supplement to the
// Astronomical Almanac, eq. following Fairhead & Bretagnon); amplitude is
// bounded under 2ms and is negligible for astrocartography-grade results,
// carried only so TimeFrame construction is complete.
func TDBMinusTT(jdTT float64) float64 {
	g := (357.53 + 0.9856003*(jdTT-2451545.0)) * math.Pi / 180.0
	return 0.001657*math.Sin(g) + 0.000022*math.Sin(2*g)
}

// LocalToUTCJulianDate converts a civil Instant whose clock reads
// utcOffsetHours ahead of UTC into JD_UTC.
func LocalToUTCJulianDate(inst model.Instant, utcOffsetHours float64) (float64, error) {
	if err := inst.Validate(); err != nil {
		return 0, errors.WithStack(err)
	}
	hour := float64(inst.Hour) + float64(inst.Minute)/60.0 + float64(inst.Second)/3600.0
	localJD := ToJulianDate(inst.Year, inst.Month, inst.Day, hour)
	return localJD - utcOffsetHours/24.0, nil
}

// BuildTimeFrame chains JD_UTC -> JD_TT -> JD_UT1 into a model.TimeFrame.
func BuildTimeFrame(jdUTC float64) model.TimeFrame {
	jdTT := UTToTT(jdUTC)
	jdUT1 := TTToUT1(jdTT)
	return model.TimeFrame{JDUTC: jdUTC, JDUT1: jdUT1, JDTT: jdTT}
}
