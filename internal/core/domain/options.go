package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrUnknownOption      = errors.New("unknown option")
	ErrInvalidOptionValue = errors.New("invalid option value")
)

type OptionKind int

const (
	KindString OptionKind = iota
	KindInt
	KindFloat
	KindBool
	KindStringList
)

func (k OptionKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	case KindStringList:
		return "list"
	default:
		return "unknown"
	}
}

type OptionSpec struct {
	Name    string
	Kind    OptionKind
	Default any
}

var optionSpecs = []OptionSpec{
	{Name: "title", Kind: KindString, Default: "{name}"},
	{Name: "offlineTitle", Kind: KindString, Default: "{name} is offline"},
	{Name: "description", Kind: KindString, Default: "Playing {map} with {numplayers}/{maxplayers} players\nConnect with {connect}"},
	{Name: "offlineDescription", Kind: KindString, Default: "Last seen {lastseen}"},
	{Name: "color", Kind: KindInt, Default: int64(0x2894C2)},
	{Name: "offlineColor", Kind: KindInt, Default: int64(0xFF0000)},
	{Name: "image", Kind: KindString, Default: ""},
	{Name: "offlineImage", Kind: KindString, Default: ""},
	{Name: "columns", Kind: KindInt, Default: int64(3)},
	{Name: "showPlayers", Kind: KindBool, Default: true},
	{Name: "dots", Kind: KindStringList, Default: []string{"⚪", "⚫"}},
	{Name: "timezoneOffset", Kind: KindFloat, Default: float64(0)},
}

func LookupOption(name string) (OptionSpec, bool) {
	for _, spec := range optionSpecs {
		if spec.Name == name {
			return spec, true
		}
	}
	return OptionSpec{}, false
}

func OptionNames() []string {
	names := make([]string, 0, len(optionSpecs))
	for _, spec := range optionSpecs {
		names = append(names, spec.Name)
	}
	return names
}

// Parse converts user input into the kind's Go type.
func (k OptionKind) Parse(raw string) (any, error) {
	switch k {
	case KindString:
		return raw, nil
	case KindInt:
		return parseInt(raw)
	case KindFloat:
		return parseFloat(raw)
	case KindBool:
		return strconv.ParseBool(strings.TrimSpace(raw))
	case KindStringList:
		return parseList(raw)
	default:
		return nil, fmt.Errorf("unsupported option kind %d", k)
	}
}

// Normalize converts a decoded JSON value into the kind's Go type.
func (k OptionKind) Normalize(v any) (any, error) {
	switch k {
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindInt:
		switch n := v.(type) {
		case int64:
			return n, nil
		case int:
			return int64(n), nil
		case float64:
			return floatToInt(n)
		case json.Number:
			return parseInt(n.String())
		}
	case KindFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int64:
			return float64(n), nil
		case int:
			return float64(n), nil
		case json.Number:
			return n.Float64()
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindStringList:
		switch l := v.(type) {
		case []string:
			return append([]string(nil), l...), nil
		case []any:
			out := make([]string, 0, len(l))
			for _, item := range l {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("list item %v is not a string", item)
				}
				out = append(out, s)
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("cannot use %T as %s", v, k)
}

func parseInt(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if i, err := strconv.ParseInt(raw, 0, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	return floatToInt(f)
}

func floatToInt(f float64) (int64, error) {
	if f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return int64(f), nil
}

func parseFloat(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if i, err := strconv.ParseInt(raw, 0, 64); err == nil {
		return float64(i), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return f, nil
}

func parseList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return nil, fmt.Errorf("%q is not a JSON list of strings", raw)
		}
		return list, nil
	}

	list := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list, nil
}
