package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/harshasoftware/halohome/model"
)

// birthFlags holds the civil-instant and location flags shared by every
// subcommand that needs a natal context.
type birthFlags struct {
	year, month, day          int
	hour, minute, second      int
	latDeg, lonDeg            float64
	utcOffsetHours            float64
	timezone                  string
}

func addBirthFlags(cmd *cobra.Command) *birthFlags {
	f := &birthFlags{}
	flags := cmd.Flags()
	flags.IntVar(&f.year, "year", 2000, "birth year")
	flags.IntVar(&f.month, "month", 1, "birth month (1-12)")
	flags.IntVar(&f.day, "day", 1, "birth day")
	flags.IntVar(&f.hour, "hour", 0, "birth hour (0-23, local civil time)")
	flags.IntVar(&f.minute, "minute", 0, "birth minute")
	flags.IntVar(&f.second, "second", 0, "birth second")
	flags.Float64Var(&f.latDeg, "lat", 0, "birth latitude in degrees")
	flags.Float64Var(&f.lonDeg, "lon", 0, "birth longitude in degrees")
	flags.Float64Var(&f.utcOffsetHours, "utc-offset", 0, "known UTC offset in hours (ignored if --timezone is set)")
	flags.StringVar(&f.timezone, "timezone", "", "IANA zone name; resolved via the stdlib tzdata loader instead of --utc-offset")
	return f
}

func (f *birthFlags) instant() model.Instant {
	return model.Instant{
		Year: f.year, Month: f.month, Day: f.day,
		Hour: f.hour, Minute: f.minute, Second: f.second,
		LatDeg: f.latDeg, LonDeg: f.lonDeg,
	}
}

// fixedZoneResolver resolves every coordinate to the same IANA zone name,
// letting --timezone drive astrocore's local-offset resolution path without
// needing a real geographic timezone database wired into the CLI.
type fixedZoneResolver string

func (z fixedZoneResolver) Resolve(latDeg, lonDeg float64) (string, bool) {
	if z == "" {
		return "", false
	}
	return string(z), true
}

func (f *birthFlags) resolver() fixedZoneResolver {
	return fixedZoneResolver(f.timezone)
}

// resolvedUTCOffsetHours returns --utc-offset directly, unless --timezone is
// set, in which case it resolves the concrete offset for this civil instant
// via the stdlib tzdata loader (DST-correct for that specific date).
func (f *birthFlags) resolvedUTCOffsetHours() (float64, error) {
	if f.timezone == "" {
		return f.utcOffsetHours, nil
	}
	loc, err := time.LoadLocation(f.timezone)
	if err != nil {
		return 0, err
	}
	civil := time.Date(f.year, time.Month(f.month), f.day, f.hour, f.minute, f.second, 0, loc)
	_, offsetSec := civil.Zone()
	return float64(offsetSec) / 3600.0, nil
}
