package schedule

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableShape(t *testing.T) {
	table := New()

	counts := map[time.Weekday]int{
		time.Sunday:    24,
		time.Monday:    4,
		time.Tuesday:   6,
		time.Wednesday: 6,
		time.Thursday:  10,
		time.Friday:    4,
		time.Saturday:  24,
	}

	for wd, want := range counts {
		assert.Len(t, table.SlotsFor(wd), want, "weekday %s", wd)
		assert.False(t, table.Closed(wd))
	}
}

func TestSlotsAreOrderedAndUnique(t *testing.T) {
	table := New()

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		seen := map[string]bool{}
		for _, slot := range table.SlotsFor(wd) {
			require.False(t, seen[slot.Time], "%s: duplicate slot %s", wd, slot.Time)
			seen[slot.Time] = true
		}
	}
}

func TestMondaySlots(t *testing.T) {
	// The published Monday hours: four evening slots only.
	slots := New().SlotsFor(time.Monday)

	require.Len(t, slots, 4)
	assert.Equal(t, Slot{Time: "06:00", Display: "6:00 PM"}, slots[0])
	assert.Equal(t, Slot{Time: "07:30", Display: "7:30 PM"}, slots[3])
}

func TestBookable(t *testing.T) {
	table := New()

	tests := []struct {
		name string
		date string
		hhmm string
		want bool
	}{
		{"monday evening slot", "2025-03-10", "06:00", true}, // a Monday
		{"monday morning is not offered", "2025-03-10", "09:00", false},
		{"thursday mid-morning", "2025-03-13", "10:00", true},
		{"thursday afternoon gap", "2025-03-13", "15:00", false},
		{"sunday morning", "2025-03-09", "07:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Bookable(tt.date, tt.hhmm)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookableRejectsBadDate(t *testing.T) {
	_, err := New().Bookable("03/10/2025", "06:00")
	assert.Error(t, err)
}

func TestFromDaysClosedDay(t *testing.T) {
	table := FromDays(map[time.Weekday]Day{
		time.Monday: {Slots: nil},
	})

	assert.True(t, table.Closed(time.Monday))
	assert.Equal(t, "Monday", table.Day(time.Monday).Name)
	// other days keep the defaults
	assert.Len(t, table.SlotsFor(time.Tuesday), 6)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	payload := `{
		"1": {"slots": []},
		"2": {"name": "Taco Tuesday", "slots": [{"time": "10:00", "display": "10:00 AM"}]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	table, err := Load(path)
	require.NoError(t, err)

	assert.True(t, table.Closed(time.Monday))
	assert.Equal(t, "Taco Tuesday", table.Day(time.Tuesday).Name)
	assert.Equal(t, []Slot{{Time: "10:00", Display: "10:00 AM"}}, table.SlotsFor(time.Tuesday))
	assert.Len(t, table.SlotsFor(time.Sunday), 24)
}

func TestDaysReturnsACopy(t *testing.T) {
	table := New()
	days := table.Days()
	days[1].Slots[0] = Slot{Time: "00:00", Display: "never"}

	assert.Equal(t, "06:00", table.SlotsFor(time.Monday)[0].Time)
}
