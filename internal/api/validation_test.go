package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Email  string `validate:"required,email"`
	Name   string `validate:"required,min=2"`
	Rating int    `validate:"gte=0,lte=5"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(contactForm{Email: "user@example.com", Name: "Ann", Rating: 4})
	assert.Empty(t, errs)
}

func TestValidateStructErrors(t *testing.T) {
	errs := ValidateStruct(contactForm{Email: "not-an-email", Rating: 9})
	require.Len(t, errs, 3)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "email", byField["Email"].Tag)
	assert.Equal(t, "Email must be a valid email address", byField["Email"].Message)
	assert.Equal(t, "Name is required", byField["Name"].Message)
	assert.Equal(t, "Rating must be less than or equal to 5", byField["Rating"].Message)
}

// Required rejects empty json.Number fields the same way it rejects empty strings.
func TestValidateStructNumberField(t *testing.T) {
	type form struct {
		PricePerDay json.Number `validate:"required"`
	}

	errs := ValidateStruct(form{})
	require.Len(t, errs, 1)
	assert.Equal(t, "PricePerDay is required", errs[0].Message)

	assert.Empty(t, ValidateStruct(form{PricePerDay: "15.00"}))
}
