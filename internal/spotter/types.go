package spotter

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Credentials are sent as the JSON body of the sign-up and sign-in requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Bearer is the sign-in response. Only the token is used; any other field is ignored.
type Bearer struct {
	Token string `json:"token"`
}

// Animal is a single sighting as returned by the detail endpoint.
type Animal struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	TimeSeen    time.Time `json:"timeSeen"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageURL"`
}

// animalPayload is the wire shape of Animal. Every field must be present.
type animalPayload struct {
	ID          *int     `json:"id" validate:"required"`
	Name        *string  `json:"name" validate:"required"`
	TimeSeen    *float64 `json:"timeSeen" validate:"required"` // Seconds since the Unix epoch
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	ImageURL    *string  `json:"imageURL" validate:"required"`
}

func (p animalPayload) toAnimal() (*Animal, error) {
	timeSeen, err := UnixSeconds(*p.TimeSeen)
	if err != nil {
		return nil, err
	}

	return &Animal{
		ID:          *p.ID,
		Name:        *p.Name,
		TimeSeen:    timeSeen,
		Latitude:    *p.Latitude,
		Longitude:   *p.Longitude,
		Description: *p.Description,
		ImageURL:    *p.ImageURL,
	}, nil
}

// UnixSeconds converts seconds since 1970-01-01T00:00:00Z to a UTC time.
// Fractional seconds are kept with nanosecond precision. Values that are not finite or do not
// fit in int64 seconds are rejected.
func UnixSeconds(secs float64) (time.Time, error) {
	if math.IsNaN(secs) || secs < math.MinInt64 || secs >= math.MaxInt64 {
		return time.Time{}, fmt.Errorf("timestamp out of range: %v", secs)
	}

	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC(), nil
}
