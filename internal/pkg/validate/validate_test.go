package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"max@example.com",
		"Max.Mustermann+tours@sub.example.co",
		"a_b%c@mail.example.de",
	}
	for _, e := range valid {
		assert.True(t, Email(e), e)
	}

	invalid := []string{
		"not-an-email",
		"a@b",          // no dot in domain
		"a@b.c",        // one-letter TLD
		"@example.com", // empty local part
		"max@",
		"max example@example.com",
	}
	for _, e := range invalid {
		assert.False(t, Email(e), e)
	}
}

func TestStruct_BasicEmailTag(t *testing.T) {
	type payload struct {
		Email string `validate:"required,basicemail"`
	}
	assert.NoError(t, Struct(payload{Email: "max@example.com"}))
	assert.Error(t, Struct(payload{Email: "a@b"}))
	assert.Error(t, Struct(payload{}))
}
