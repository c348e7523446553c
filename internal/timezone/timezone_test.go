package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/timezone"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Europe/Madrid", timezone.Location("Europe/Madrid").String())
	assert.Equal(t, timezone.DefaultTimezone, timezone.Location("Mars/Olympus").String())
	assert.False(t, timezone.IsValid(""))
}

func TestToday_IsMidnightUTC(t *testing.T) {
	timezone.SetDefault("America/Mexico_City")
	today := timezone.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Equal(t, "America/Mexico_City", timezone.Default().String())
}
