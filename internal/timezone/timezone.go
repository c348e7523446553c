package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "America/Mexico_City"

var current atomic.Pointer[time.Location]

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// SetDefault define o fuso usado por Now e Today. Chamado uma vez no boot.
func SetDefault(tz string) *time.Location {
	loc := Location(tz)
	current.Store(loc)
	return loc
}

func Default() *time.Location {
	if loc := current.Load(); loc != nil {
		return loc
	}
	return Location(DefaultTimezone)
}

func Now() time.Time {
	return time.Now().In(Default())
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today devolve o dia de calendário local como 00:00 UTC, o formato das datas da agenda.
func Today() time.Time {
	y, m, d := Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
