package daily_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordscramble/internal/daily"
)

func at(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestToday(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+10", 10*60*60)
	p := daily.Picker{Now: at(time.Date(2026, 10, 17, 5, 0, 0, 0, loc))} // 16th in UTC
	assert.Equal(t, "2026-10-16", p.Today())
}

func TestPicker(t *testing.T) {
	t.Parallel()
	candidates := []string{"silkworm", "triangle", "painters", "stranger", "monsters"}
	morning := daily.Picker{Salt: "s", Now: at(time.Date(2026, 10, 17, 0, 1, 0, 0, time.UTC))}
	night := daily.Picker{Salt: "s", Now: at(time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC))}

	got := morning.Pick(candidates)
	assert.Contains(t, candidates, got)
	assert.Equal(t, got, night.Pick(candidates), "stable within a day")
	assert.Equal(t, "2026-10-17", morning.Today())
	assert.Equal(t, "", morning.Pick(nil))
	assert.Equal(t, "only", morning.Pick([]string{"only"}))
}

func TestPicker_VariesAcrossDays(t *testing.T) {
	t.Parallel()
	candidates := []string{"silkworm", "triangle", "painters", "stranger", "monsters", "absolute", "bandages", "carnival"}
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	seen := map[string]bool{}
	for d := 0; d < 60; d++ {
		p := daily.Picker{Salt: "s", Now: at(start.AddDate(0, 0, d))}
		seen[p.Pick(candidates)] = true
	}
	assert.Greater(t, len(seen), 1)
}
