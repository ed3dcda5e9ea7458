package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateE164(t *testing.T) {
	valid := []string{"+6281234567890", "+14155552671", "+442071838750"}
	for _, phone := range valid {
		assert.True(t, e164Re.MatchString(phone), phone)
	}

	invalid := []string{"6281234567890", "+62-812-345", "+123", "", "+abc12345678"}
	for _, phone := range invalid {
		assert.False(t, e164Re.MatchString(phone), phone)
	}
}

func TestSanitizeStruct(t *testing.T) {
	name := "  <b>bold</b>  "
	in := struct {
		Name    string
		Pointer *string
		Skip    int
	}{
		Name:    "  spaced  ",
		Pointer: &name,
		Skip:    7,
	}

	SanitizeStruct(&in)

	assert.Equal(t, "spaced", in.Name)
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", *in.Pointer)
	assert.Equal(t, 7, in.Skip)
}

func TestSanitizeStruct_NonStruct(t *testing.T) {
	s := "  untouched  "
	SanitizeStruct(&s)
	SanitizeStruct(nil)
	assert.Equal(t, "  untouched  ", s)
}
