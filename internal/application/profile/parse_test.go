package profile

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"silvernest-api/internal/domain/entity"
	wfnode "silvernest-api/internal/workflow/node"
)

const validPayload = `{"bio":"Curious, kind and ready for a second act.","prompt_answers":["a","b","c"],"first_messages":["d","e","f"],"style_notes":"Lead with warmth."}`

func requireParseKind(t *testing.T, err error, kind ParseErrorKind, field string) {
	t.Helper()
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
	assert.Equal(t, kind, pe.Kind)
	assert.Equal(t, field, pe.Field)
}

func TestParseValid(t *testing.T) {
	got, err := Parse(validPayload)
	require.NoError(t, err)
	assert.Equal(t, &entity.GeneratedProfile{
		Bio:           "Curious, kind and ready for a second act.",
		PromptAnswers: []string{"a", "b", "c"},
		FirstMessages: []string{"d", "e", "f"},
		StyleNotes:    "Lead with warmth.",
	}, got)
}

func TestParseToleratesExtraKeysAndWhitespace(t *testing.T) {
	got, err := Parse("\n  " + `{"bio":"x","prompt_answers":[],"first_messages":["m"],"style_notes":"y","mood":"sunny"}` + "  \n")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Bio)
	assert.Empty(t, got.PromptAnswers)
}

func TestParseDoesNotTransformContent(t *testing.T) {
	got, err := Parse(`{"bio":"  padded  ","prompt_answers":["z","a"],"first_messages":[],"style_notes":""}`)
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", got.Bio)
	assert.Equal(t, []string{"z", "a"}, got.PromptAnswers)
}

func TestParseMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"not json":  "Here is your profile!",
		"truncated": `{"bio":"x","prompt_answers":["a"`,
		"array":     `["bio"]`,
		"null":      "null",
		"trailing":  validPayload + ` {"extra":true}`,
		"fenced":    "```json\n" + validPayload + "\n```",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			requireParseKind(t, err, MalformedPayload, "")
			assert.True(t, errors.Is(err, ErrMalformedPayload))
			assert.False(t, errors.Is(err, ErrSchemaMismatch))
		})
	}
}

func TestParseFencedAfterStrip(t *testing.T) {
	got, err := Parse(wfnode.StripCodeFence("```json\n" + validPayload + "\n```"))
	require.NoError(t, err)
	assert.Len(t, got.FirstMessages, 3)
}

func TestParseSchemaMismatch(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		field string
	}{
		{"missing bio", `{"prompt_answers":[],"first_messages":[],"style_notes":""}`, "bio"},
		{"bio not string", `{"bio":42,"prompt_answers":[],"first_messages":[],"style_notes":""}`, "bio"},
		{"bio null", `{"bio":null,"prompt_answers":[],"first_messages":[],"style_notes":""}`, "bio"},
		{"prompt_answers string", `{"bio":"x","prompt_answers":"a, b, c","first_messages":[],"style_notes":""}`, "prompt_answers"},
		{"prompt_answers mixed", `{"bio":"x","prompt_answers":["a",2],"first_messages":[],"style_notes":""}`, "prompt_answers"},
		{"first_messages null", `{"bio":"x","prompt_answers":[],"first_messages":null,"style_notes":""}`, "first_messages"},
		{"first_messages null element", `{"bio":"x","prompt_answers":[],"first_messages":[null],"style_notes":""}`, "first_messages"},
		{"missing style_notes", `{"bio":"x","prompt_answers":[],"first_messages":[]}`, "style_notes"},
		{"style_notes array", `{"bio":"x","prompt_answers":[],"first_messages":[],"style_notes":["y"]}`, "style_notes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw)
			requireParseKind(t, err, SchemaMismatch, tc.field)
			assert.True(t, errors.Is(err, ErrSchemaMismatch))
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	want := entity.GeneratedProfile{
		Bio:           "Line one, \"quoted\", and unicode ✓.",
		PromptAnswers: []string{"first", "second", "third"},
		FirstMessages: []string{"hi", "hello", "hey there"},
		StyleNotes:    "Be yourself.",
	}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	got, err := Parse(string(data))
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestParseRoundTripNilSlices(t *testing.T) {
	data, err := json.Marshal(entity.GeneratedProfile{Bio: "b", StyleNotes: "s"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"bio":"b","prompt_answers":[],"first_messages":[],"style_notes":"s"}`, string(data))

	got, err := Parse(string(data))
	require.NoError(t, err)
	assert.Equal(t, "b", got.Bio)
	assert.Empty(t, got.PromptAnswers)
	assert.Empty(t, got.FirstMessages)
	assert.Equal(t, "s", got.StyleNotes)

	// 嵌在结果记录里同样生效
	data, err = json.Marshal(entity.ResultRecord{ID: "r1"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"prompt_answers":[]`)
}
