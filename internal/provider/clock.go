package provider

import (
	"time"
	_ "time/tzdata"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
)

// WorldCities lists the named timezones included with every time block
var WorldCities = []struct {
	City string
	Zone string
}{
	{"Los Angeles", "America/Los_Angeles"},
	{"New York", "America/New_York"},
	{"London", "Europe/London"},
	{"Tokyo", "Asia/Tokyo"},
	{"Mumbai", "Asia/Kolkata"},
	{"Sydney", "Australia/Sydney"},
}

type zone struct {
	city string
	name string
	loc  *time.Location
}

// Clock reads local, UTC and world-city times
type Clock struct {
	now   func() time.Time
	local *time.Location
	zones []zone
}

// NewClock creates a clock over the system time and local zone
func NewClock() *Clock {
	return NewClockAt(time.Now, time.Local)
}

// NewClockAt creates a clock with an injected time source and local zone
func NewClockAt(now func() time.Time, local *time.Location) *Clock {
	zones := make([]zone, 0, len(WorldCities))
	for _, c := range WorldCities {
		loc, err := time.LoadLocation(c.Zone)
		if err != nil {
			continue
		}
		zones = append(zones, zone{city: c.City, name: c.Zone, loc: loc})
	}
	return &Clock{now: now, local: local, zones: zones}
}

// Read samples all zones at a single instant
func (c *Clock) Read() *model.ClockReading {
	at := c.now()
	reading := &model.ClockReading{
		Local:  at.In(c.local),
		UTC:    at.UTC(),
		Cities: make([]model.CityTime, 0, len(c.zones)),
	}
	for _, z := range c.zones {
		reading.Cities = append(reading.Cities, model.CityTime{City: z.city, Zone: z.name, Time: at.In(z.loc)})
	}
	return reading
}
