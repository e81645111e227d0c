package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silvernest-api/internal/domain/entity"
	apperrors "silvernest-api/pkg/errors"
)

func requireValidation(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, msg, appErr.Message)
}

func TestValidateInput(t *testing.T) {
	require.NoError(t, ValidateInput(hingeInput()))

	cases := []struct {
		name   string
		mutate func(*entity.ProfileInput)
		msg    string
	}{
		{"short profile", func(in *entity.ProfileInput) { in.ProfileText = "  too short  " }, MsgProfileTooShort},
		{"age bracket", func(in *entity.ProfileInput) { in.AgeBracket = "" }, MsgAgeBracket},
		{"gender", func(in *entity.ProfileInput) { in.Gender = "" }, MsgGender},
		{"platform", func(in *entity.ProfileInput) { in.Platform = "" }, MsgPlatform},
		{"style", func(in *entity.ProfileInput) { in.StylePreference = "" }, MsgStylePreference},
		{"length", func(in *entity.ProfileInput) { in.LengthPreference = "" }, MsgLengthPreference},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := hingeInput()
			tc.mutate(&in)
			requireValidation(t, ValidateInput(in), tc.msg)
		})
	}
}

func TestValidateInputChecksProfileFirst(t *testing.T) {
	requireValidation(t, ValidateInput(entity.ProfileInput{}), MsgProfileTooShort)
}

func TestValidateInputCountsRunesAfterTrim(t *testing.T) {
	in := hingeInput()
	in.ProfileText = "   " + strings.Repeat("é", 40) + "   "
	assert.NoError(t, ValidateInput(in))

	in.ProfileText = strings.Repeat("é", 39)
	requireValidation(t, ValidateInput(in), MsgProfileTooShort)
}

func TestValidateInputAcceptsUnknownEnumValues(t *testing.T) {
	in := hingeInput()
	in.Platform = "Coffee Meets Bagel"
	in.AgeBracket = "70+"
	assert.NoError(t, ValidateInput(in))
}

func TestNormalizeInput(t *testing.T) {
	got := NormalizeInput(entity.ProfileInput{ProfileText: "  text \n", Notes: " n ", Platform: " Hinge "})
	assert.Equal(t, "text", got.ProfileText)
	assert.Equal(t, "n", got.Notes)
	assert.Equal(t, " Hinge ", got.Platform)
	assert.NotNil(t, got.Priorities)
}

func TestValidatePreview(t *testing.T) {
	assert.NoError(t, ValidatePreview(entity.PreviewInput{Platform: "Hinge", Bio: "bio"}))
	requireValidation(t, ValidatePreview(entity.PreviewInput{Platform: "Hinge"}), MsgPreviewRequired)
	requireValidation(t, ValidatePreview(entity.PreviewInput{Bio: "bio"}), MsgPreviewRequired)
}

func TestParseDataURL(t *testing.T) {
	img := ParseDataURL("data:image/png;base64,iVBORw0KGgo=")
	require.NotNil(t, img)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, "iVBORw0KGgo=", img.Data)

	assert.Nil(t, ParseDataURL(""))
	assert.Nil(t, ParseDataURL("https://example.com/photo.png"))
	assert.Nil(t, ParseDataURL("data:image/png,rawbytes"))
}
