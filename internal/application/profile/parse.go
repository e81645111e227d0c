package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"silvernest-api/internal/domain/entity"
)

// ParseErrorKind 模型输出校验失败的类别
type ParseErrorKind string

const (
	MalformedPayload ParseErrorKind = "malformed_payload"
	SchemaMismatch   ParseErrorKind = "schema_mismatch"
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrSchemaMismatch   = errors.New("schema mismatch")
)

// ParseError 描述模型输出为何不可用
type ParseError struct {
	Kind   ParseErrorKind
	Field  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := string(e.Kind)
	if e.Field != "" {
		msg += ": field " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is 使 errors.Is(err, ErrMalformedPayload/ErrSchemaMismatch) 按类别匹配
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrMalformedPayload:
		return e.Kind == MalformedPayload
	case ErrSchemaMismatch:
		return e.Kind == SchemaMismatch
	default:
		return false
	}
}

// Parse 把模型原始输出解析为 GeneratedProfile。
// 只校验结构：四个字段必须存在且类型正确；内容不做任何修剪或重排，多余字段忽略。
func Parse(raw string) (*entity.GeneratedProfile, error) {
	fields, err := decodeObject([]byte(raw))
	if err != nil {
		return nil, err
	}

	var out entity.GeneratedProfile
	if out.Bio, err = stringField(fields, "bio"); err != nil {
		return nil, err
	}
	if out.PromptAnswers, err = stringSliceField(fields, "prompt_answers"); err != nil {
		return nil, err
	}
	if out.FirstMessages, err = stringSliceField(fields, "first_messages"); err != nil {
		return nil, err
	}
	if out.StyleNotes, err = stringField(fields, "style_notes"); err != nil {
		return nil, err
	}
	return &out, nil
}

// decodeObject 要求输入恰好是一个 JSON 对象，前后只允许空白
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &ParseError{Kind: MalformedPayload, Reason: "empty payload"}
	}
	if trimmed[0] != '{' {
		return nil, &ParseError{Kind: MalformedPayload, Reason: "payload is not a JSON object"}
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return nil, &ParseError{Kind: MalformedPayload, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Kind: MalformedPayload, Reason: "trailing data after JSON object"}
	}
	return fields, nil
}

func stringField(fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", &ParseError{Kind: SchemaMismatch, Field: name, Reason: "missing"}
	}
	s, ok := asString(raw)
	if !ok {
		return "", &ParseError{Kind: SchemaMismatch, Field: name, Reason: "expected string"}
	}
	return s, nil
}

func stringSliceField(fields map[string]json.RawMessage, name string) ([]string, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, &ParseError{Kind: SchemaMismatch, Field: name, Reason: "missing"}
	}
	var items []json.RawMessage
	if !isKind(raw, '[') || json.Unmarshal(raw, &items) != nil {
		return nil, &ParseError{Kind: SchemaMismatch, Field: name, Reason: "expected array of strings"}
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := asString(item)
		if !ok {
			return nil, &ParseError{Kind: SchemaMismatch, Field: name, Reason: fmt.Sprintf("element %d is not a string", i)}
		}
		out = append(out, s)
	}
	return out, nil
}

// asString 只接受 JSON 字符串；null 不视为空字符串
func asString(raw json.RawMessage) (string, bool) {
	if !isKind(raw, '"') {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isKind(raw json.RawMessage, first byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == first
}
