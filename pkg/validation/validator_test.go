package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
	Role     string `json:"role" validate:"omitempty,role"`
}

type statusBody struct {
	Status string `json:"status" validate:"required,bookingstatus"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	register(v)
	return v
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	err := newValidator().Struct(signup{Email: "nope", Password: "abc", Role: "superuser"})
	require.Error(t, err)

	d := ToDetails(err)
	assert.Equal(t, "is required", d["name"])
	assert.Equal(t, "must be a valid email address", d["email"])
	assert.Equal(t, "must be at least 6 characters long", d["password"])
	assert.Equal(t, "must be one of: admin, traveler, host", d["role"])
}

func TestDomainTags(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Struct(statusBody{Status: "confirmed"}))
	assert.Error(t, v.Struct(statusBody{Status: "archived"}))
	assert.NoError(t, v.Struct(signup{Name: "a", Email: "a@x.com", Password: "secret"}))
}

func TestMessage(t *testing.T) {
	err := newValidator().Struct(signup{Email: "a@x.com", Password: "secret"})
	assert.Equal(t, "name is required", Message(err))

	var target map[string]any
	syntaxErr := json.Unmarshal([]byte("{"), &target)
	assert.Equal(t, "Invalid request: invalid json", Message(syntaxErr))

	assert.Empty(t, Message(nil))
}

func TestMessageForDomainTags(t *testing.T) {
	v := newValidator()
	assert.Equal(t, "Invalid status", Message(v.Struct(statusBody{Status: "done"})))
	assert.Equal(t, "Invalid role", Message(v.Struct(signup{Name: "a", Email: "a@x.com", Password: "secret", Role: "root"})))

	// several failures fall back to the per-field sentence
	err := v.Struct(signup{Email: "nope", Password: "secret", Role: "root"})
	assert.Equal(t, "email must be a valid email address; name is required; role must be one of: admin, traveler, host", Message(err))
}
