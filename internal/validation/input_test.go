package validation

import (
	"strings"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("user.name+tag@sub.example.co"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@domain"))
	assert.Error(t, ValidateEmail("@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword(strings.Repeat("x", 50)))
	assert.Error(t, ValidatePassword(strings.Repeat("x", 51)))
}

func TestValidateCaption(t *testing.T) {
	assert.Error(t, ValidateCaption(""))
	assert.Error(t, ValidateCaption("ab"))
	assert.NoError(t, ValidateCaption("abc"))
	assert.NoError(t, ValidateCaption(strings.Repeat("x", 500)))
	assert.Error(t, ValidateCaption(strings.Repeat("x", 501)))
}

func TestValidateBody(t *testing.T) {
	assert.Error(t, ValidateBody("too short"))
	assert.NoError(t, ValidateBody("long enough body text"))
	assert.Error(t, ValidateBody(strings.Repeat("x", 1001)))
}

func TestValidateComment(t *testing.T) {
	assert.Error(t, ValidateComment(""))
	assert.NoError(t, ValidateComment("x"))
	assert.NoError(t, ValidateComment(strings.Repeat("x", 1000)))
	assert.Error(t, ValidateComment(strings.Repeat("x", 1001)))
}

func TestValidateTags(t *testing.T) {
	assert.NoError(t, ValidateTags(nil, MaxPostTags))
	assert.NoError(t, ValidateTags([]string{"one", "two"}, MaxPostTags))
	assert.Error(t, ValidateTags([]string{""}, MaxPostTags))
	assert.Error(t, ValidateTags([]string{strings.Repeat("x", 51)}, MaxPostTags))

	many := make([]string, MaxCommentTags+1)
	for i := range many {
		many[i] = "tag"
	}
	assert.Error(t, ValidateTags(many, MaxCommentTags))
	assert.NoError(t, ValidateTags(many[:MaxCommentTags], MaxCommentTags))
}

func TestProfileValidators(t *testing.T) {
	assert.Error(t, ValidateFullname("x"))
	assert.NoError(t, ValidateFullname("Jo"))
	assert.Error(t, ValidateFullname(strings.Repeat("x", 51)))

	assert.NoError(t, ValidateBio(""))
	assert.Error(t, ValidateBio(strings.Repeat("x", 51)))

	assert.Error(t, ValidatePhone("123"))
	assert.NoError(t, ValidatePhone("5551234567"))
	assert.Error(t, ValidatePhone(strings.Repeat("5", 15)))

	assert.NoError(t, ValidateDialCode("+421"))
	assert.Error(t, ValidateDialCode("+12345"))

	assert.Error(t, ValidateAge(0))
	assert.Error(t, ValidateAge(-5))
	assert.NoError(t, ValidateAge(30))

	assert.NoError(t, ValidateGender(models.GenderFemale))
	assert.Error(t, ValidateGender(models.Gender("ROBOT")))
}
