// Package convert turns raw CSV field strings into typed Go values. It is
// the second of the two small external collaborators the core package
// consumes through an interface (spec §4.9), grounded on the teacher's
// DetectType/aggregate numeric handling in pkg/table.go, generalized from
// column-type sniffing into direct target-type conversion.
package convert

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EnumParser lets a target enum type participate in name-based
// conversion without Go's runtime being able to introspect const-block
// names on its own. A type implements this on its pointer receiver to
// opt in; Convert checks for it before any other target type, and a name
// the type does not recognize is an error (there is no numeric fallback).
type EnumParser interface {
	ParseEnumName(name string) (any, bool)
}

var enumParserType = reflect.TypeOf((*EnumParser)(nil)).Elem()

// Registry converts raw strings into the type of target, a non-nil
// pointer. It is safe for concurrent use once constructed.
type Registry struct {
	culture language.Tag
	caser   cases.Caser
}

// NewRegistry constructs a Registry for the given locale tag (e.g.
// "en-US", "de-DE"), governing decimal separators, grouping, and
// Unicode-aware case folding when parsing fields.
func NewRegistry(cultureTag string) *Registry {
	tag, err := language.Parse(cultureTag)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Registry{culture: tag, caser: cases.Fold()}
}

// Convert parses raw into *target, dispatching on target's concrete
// type. Unsupported target types return an error naming the type.
func (r *Registry) Convert(raw string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("convert: target must be a non-nil pointer, got %T", target)
	}

	if ep, ok := target.(EnumParser); ok {
		if v, ok := ep.ParseEnumName(strings.TrimSpace(raw)); ok {
			rv.Elem().Set(reflect.ValueOf(v))
			return nil
		}
		return fmt.Errorf("convert: %q is not a recognized enum name", raw)
	}

	switch v := target.(type) {
	case *string:
		*v = raw
		return nil
	case *bool:
		return r.convertBool(raw, v)
	case *int:
		n, err := strconv.ParseInt(r.normalizeNumber(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("convert: %q is not an int: %w", raw, err)
		}
		*v = int(n)
		return nil
	case *int64:
		n, err := strconv.ParseInt(r.normalizeNumber(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("convert: %q is not an int64: %w", raw, err)
		}
		*v = n
		return nil
	case *float64:
		f, err := strconv.ParseFloat(r.normalizeNumber(raw), 64)
		if err != nil {
			return fmt.Errorf("convert: %q is not a float64: %w", raw, err)
		}
		*v = f
		return nil
	case *big.Int:
		n, ok := new(big.Int).SetString(r.normalizeNumber(raw), 10)
		if !ok {
			return fmt.Errorf("convert: %q is not a big integer", raw)
		}
		*v = *n
		return nil
	case *big.Float:
		f, ok := new(big.Float).SetString(r.normalizeNumber(raw))
		if !ok {
			return fmt.Errorf("convert: %q is not a big float", raw)
		}
		*v = *f
		return nil
	case *time.Time:
		t, err := parseTimestamp(raw)
		if err != nil {
			return fmt.Errorf("convert: %q is not a timestamp: %w", raw, err)
		}
		*v = t
		return nil
	case *civil.Date:
		d, err := civil.ParseDate(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("convert: %q is not a date: %w", raw, err)
		}
		*v = d
		return nil
	case *uuid.UUID:
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("convert: %q is not a uuid: %w", raw, err)
		}
		*v = id
		return nil
	default:
		return fmt.Errorf("convert: unsupported target type %T", target)
	}
}

// convertBool accepts the conventional textual forms plus a bare "1"/"0",
// unconditionally and regardless of culture (spec §9 Open Question).
func (r *Registry) convertBool(raw string, target *bool) error {
	switch r.caser.String(strings.TrimSpace(raw)) {
	case "true", "t", "yes", "y", "1":
		*target = true
		return nil
	case "false", "f", "no", "n", "0":
		*target = false
		return nil
	default:
		return fmt.Errorf("convert: %q is not a recognized boolean", raw)
	}
}

// normalizeNumber strips the culture's grouping separator and rewrites
// its decimal separator to '.', the form strconv and math/big expect.
func (r *Registry) normalizeNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	grouping, decimal := separatorsFor(r.culture)
	if grouping != "" {
		raw = strings.ReplaceAll(raw, grouping, "")
	}
	if decimal != "." {
		raw = strings.ReplaceAll(raw, decimal, ".")
	}
	return raw
}

// separatorsFor returns the (grouping, decimal) separator pair for a
// locale. Only the handful of separator conventions spec §4.9 calls out
// are modeled; anything else falls back to the US convention.
func separatorsFor(tag language.Tag) (grouping, decimal string) {
	base, _ := tag.Base()
	switch base.String() {
	case "de", "it", "nl", "pl", "ru", "tr":
		return ".", ","
	case "fr", "es", "pt", "sv", "fi":
		return " ", ","
	default:
		return ",", "."
	}
}

// parseTimestamp tries a short list of common layouts, RFC3339 first.
func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
		"2006-01-02",
		"01/02/2006",
	}
	var lastErr error
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
