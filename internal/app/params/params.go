// Package params validates inbound request parameters before any upstream
// call is made.
package params

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ErrValidation tags every parameter validation failure.
var ErrValidation = errors.New("invalid parameters")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates a parameter struct against its validate tags. The returned
// error matches ErrValidation and keeps the per-field details.
func Check(v any) error {
	if err := validate.Struct(v); err != nil {
		return errors.Mark(err, ErrValidation)
	}
	return nil
}

// TeamLookup identifies a single team.
type TeamLookup struct {
	ID int `validate:"gt=0"`
}

// TeamSearch narrows teams by a name query and optional country.
type TeamSearch struct {
	Query   string `validate:"required,min=2"`
	Country string `validate:"omitempty,min=2"`
}

// SeasonScope pins a request to one league season.
type SeasonScope struct {
	League int `validate:"gt=0"`
	Season int `validate:"gte=2000,lte=2100"`
}

// DateLookup selects a calendar date.
type DateLookup struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

// FixtureLookup identifies a single fixture.
type FixtureLookup struct {
	ID int `validate:"gt=0"`
}

// PlayerLookup identifies a single player.
type PlayerLookup struct {
	ID int `validate:"gt=0"`
}

// PlayerSearch narrows players by a name query and optional league scope.
type PlayerSearch struct {
	Query  string `validate:"required,min=2"`
	League int    `validate:"omitempty,gt=0"`
}
