// Package parser extracts fields from currency service replies without a JSON decoder.
//
// Replies look like
//
//	{"success": true, "src": "2 United States Dollars", "dst": "1.772814 Euros", "error": ""}
//
// The service does not fix the spacing after colons and commas, so every lookup
// works on marker and quote positions. Field order is assumed fixed and values
// must not contain quotes.
package parser

import (
	"strings"

	"github.com/langowen/exchangeit/internal/entities"
	"github.com/pkg/errors"
)

const (
	FieldSuccess = "success"
	FieldSrc     = "src"
	FieldDst     = "dst"
	FieldError   = "error"
)

// BeforeSpace returns the part of s up to the first space.
func BeforeSpace(s string) (string, error) {
	const op = "parser.BeforeSpace"

	pos := strings.IndexByte(s, ' ')
	if pos == -1 {
		return "", errors.Wrap(entities.ErrNoSpace, op)
	}

	return s[:pos], nil
}

// AfterSpace returns the part of s after the first space.
func AfterSpace(s string) (string, error) {
	const op = "parser.AfterSpace"

	pos := strings.IndexByte(s, ' ')
	if pos == -1 {
		return "", errors.Wrap(entities.ErrNoSpace, op)
	}

	return s[pos+1:], nil
}

// FirstInsideQuotes returns the text between the first two double quotes of s.
func FirstInsideQuotes(s string) (string, error) {
	const op = "parser.FirstInsideQuotes"

	first := strings.IndexByte(s, '"')
	if first == -1 {
		return "", errors.Wrap(entities.ErrMissingQuote, op)
	}

	second := strings.IndexByte(s[first+1:], '"')
	if second == -1 {
		return "", errors.Wrap(entities.ErrMissingQuote, op)
	}

	return s[first+1 : first+1+second], nil
}

// Field returns the quoted value that follows the "name" marker in json.
func Field(json, name string) (string, error) {
	const op = "parser.Field"

	marker := `"` + name + `"`

	pos := strings.Index(json, marker)
	if pos == -1 {
		return "", errors.Wrapf(entities.ErrMissingField, "%s: %s", op, name)
	}

	value, err := FirstInsideQuotes(json[pos+len(marker):])
	if err != nil {
		return "", errors.Wrapf(err, "%s: %s", op, name)
	}

	return value, nil
}

func GetSrc(json string) (string, error) {
	return Field(json, FieldSrc)
}

func GetDst(json string) (string, error) {
	return Field(json, FieldDst)
}

func GetError(json string) (string, error) {
	return Field(json, FieldError)
}

// HasError reports whether the reply describes a failed query. Anything other
// than a literal true in the success slot counts as an error, including text
// that cannot be located at all.
func HasError(json string) bool {
	marker := `"` + FieldSuccess + `"`

	pos := strings.Index(json, marker)
	if pos == -1 {
		return true
	}
	rest := json[pos+len(marker):]

	colon := strings.IndexByte(rest, ':')
	if colon == -1 {
		return true
	}
	rest = rest[colon+1:]

	comma := strings.IndexByte(rest, ',')
	if comma == -1 {
		return true
	}

	return strings.TrimSpace(rest[:comma]) != "true"
}

// Parse extracts every field of a reply.
func Parse(json string) (*entities.Response, error) {
	const op = "parser.Parse"

	src, err := GetSrc(json)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	dst, err := GetDst(json)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	msg, err := GetError(json)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	return &entities.Response{
		Success: !HasError(json),
		Src:     src,
		Dst:     dst,
		Error:   msg,
	}, nil
}
