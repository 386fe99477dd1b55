package recommend

import (
	"context"
	"time"
)

// ProfileType is the fixed user-role enumeration driving recommendation
// selection.
type ProfileType string

const (
	ProfileAthlete ProfileType = "athlete"
	ProfileDriver  ProfileType = "driver"
	ProfileFarmer  ProfileType = "farmer"
	ProfileTourist ProfileType = "tourist"
	ProfileStudent ProfileType = "student"
)

// Valid reports whether p is one of the known profile types.
func (p ProfileType) Valid() bool {
	switch p {
	case ProfileAthlete, ProfileDriver, ProfileFarmer, ProfileTourist, ProfileStudent:
		return true
	}
	return false
}

// Recommendation is profile-and-weather-specific advice. Stored rows are
// externally authored; fallback instances are synthesized in memory and never
// persisted. A nil WeatherCondition means "generic for this profile"; nil
// temperature bounds mean unbounded on that side.
type Recommendation struct {
	ID               string      `json:"id"`
	ProfileType      ProfileType `json:"profileType"`
	WeatherCondition *string     `json:"weatherCondition"`
	TemperatureMinC  *int        `json:"temperatureMinC"`
	TemperatureMaxC  *int        `json:"temperatureMaxC"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Tips             []string    `json:"tips"`
	Warning          *string     `json:"warning"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// Store is the read-only contract against the recommendation table. Both
// lookups return (nil, nil) when no row matches; transport errors are
// reported but the resolver treats them as a miss at that tier.
type Store interface {
	FindSpecific(ctx context.Context, profile ProfileType, condition string, temperatureC int) (*Recommendation, error)
	FindGeneric(ctx context.Context, profile ProfileType) (*Recommendation, error)
}
