package kafconf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/v2"
)

// listSeparator splits list-valued settings on a comma optionally surrounded
// by whitespace. Empty elements survive the split; a trailing comma is a
// source mistake the resolver should surface downstream, not paper over.
var listSeparator = regexp.MustCompile(`\s*,\s*`)

// tree wraps the fully-merged config tree and distinguishes absent keys from
// present-but-uncoercible values. By the time a tree exists, fallback merging
// is already done; lookups here never know which source a value came from.
type tree struct {
	k *koanf.Koanf
}

func (t tree) requiredString(key string) (string, error) {
	v, err := t.require(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", mismatch(key, "string", v)
	}
	return s, nil
}

// optionalString reports absence as a nil value, not an error. A present
// value must still be a string.
func (t tree) optionalString(key string) (*string, error) {
	if !t.k.Exists(key) {
		return nil, nil
	}
	s, err := t.requiredString(key)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (t tree) requiredInt(key string) (int, error) {
	v, err := t.require(key)
	if err != nil {
		return 0, err
	}
	return coerceInt(key, v)
}

func (t tree) requiredBool(key string) (bool, error) {
	v, err := t.require(key)
	if err != nil {
		return false, err
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		// Values arriving through the environment overlay are strings.
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return false, mismatch(key, "bool", v)
		}
		return parsed, nil
	default:
		return false, mismatch(key, "bool", v)
	}
}

// requiredMillis reads an integer millisecond count and converts it to a
// duration, keeping unit confusion out of the typed model.
func (t tree) requiredMillis(key string) (time.Duration, error) {
	ms, err := t.requiredInt(key)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// requiredList reads a single comma-separated string and splits it into an
// ordered list. The whole value is trimmed first; elements left empty by the
// split are kept.
func (t tree) requiredList(key string) ([]string, error) {
	s, err := t.requiredString(key)
	if err != nil {
		return nil, err
	}
	return listSeparator.Split(strings.TrimSpace(s), -1), nil
}

func (t tree) require(key string) (any, error) {
	if !t.k.Exists(key) {
		return nil, &KeyError{Key: key, Err: ErrMissingKey}
	}
	return t.k.Get(key), nil
}

func coerceInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, mismatch(key, "integer", v)
		}
		return int(n), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, mismatch(key, "integer", v)
		}
		return parsed, nil
	default:
		return 0, mismatch(key, "integer", v)
	}
}

func mismatch(key, want string, got any) error {
	return &KeyError{
		Key: key,
		Err: fmt.Errorf("%w: want %s, got %T (%v)", ErrTypeMismatch, want, got, got),
	}
}
