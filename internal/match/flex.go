package match

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type flexKind int

const (
	flexAbsent flexKind = iota
	flexNull
	flexString
	flexNumber
	flexBool
	flexList
	flexUnknown
)

// Flex is a JSON value of unknown shape. Backend payloads are produced by an
// LLM and carry scalars, lists or objects in the same field from one run to
// the next, so decoding never fails; unrecognized shapes are kept raw.
type Flex struct {
	kind flexKind
	str  string
	num  float64
	b    bool
	list []Flex
	raw  json.RawMessage
}

// FlexString returns a Flex holding s. Mostly used by tests and fixtures.
func FlexString(s string) Flex {
	return Flex{kind: flexString, str: s}
}

// FlexNumber returns a Flex holding n.
func FlexNumber(n float64) Flex {
	return Flex{kind: flexNumber, num: n}
}

// FlexList returns a Flex holding the given values as a list.
func FlexList(values ...Flex) Flex {
	return Flex{kind: flexList, list: values}
}

// UnmarshalJSON decodes any JSON value without error.
func (f *Flex) UnmarshalJSON(data []byte) error {
	f.raw = append(f.raw[:0], data...)
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		f.kind = flexNull
		return nil
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		f.kind = flexString
		f.str = s
		return nil
	}
	var n float64
	if json.Unmarshal(data, &n) == nil {
		f.kind = flexNumber
		f.num = n
		return nil
	}
	var b bool
	if json.Unmarshal(data, &b) == nil {
		f.kind = flexBool
		f.b = b
		return nil
	}
	var list []Flex
	if json.Unmarshal(data, &list) == nil {
		f.kind = flexList
		f.list = list
		return nil
	}
	f.kind = flexUnknown
	return nil
}

// MarshalJSON re-emits the original JSON when available.
func (f Flex) MarshalJSON() ([]byte, error) {
	if f.raw != nil {
		return f.raw, nil
	}
	switch f.kind {
	case flexString:
		return json.Marshal(f.str)
	case flexNumber:
		return json.Marshal(f.num)
	case flexBool:
		return json.Marshal(f.b)
	case flexList:
		return json.Marshal(f.list)
	default:
		return []byte("null"), nil
	}
}

// IsAbsent reports whether the field was missing or null in the payload.
func (f Flex) IsAbsent() bool {
	return f.kind == flexAbsent || f.kind == flexNull
}

// String coerces the value to display text. Absent and null render as "";
// unknown shapes fall back to their compact raw JSON.
func (f Flex) String() string {
	switch f.kind {
	case flexAbsent, flexNull:
		return ""
	case flexString:
		return f.str
	case flexNumber:
		return strconv.FormatFloat(f.num, 'f', -1, 64)
	case flexBool:
		return strconv.FormatBool(f.b)
	case flexList:
		parts := make([]string, len(f.list))
		for i, v := range f.list {
			parts[i] = v.String()
		}
		return strings.Join(parts, ",")
	default:
		return string(f.raw)
	}
}

// Values coerces the value to a sequence of strings: a list yields one entry
// per element, a non-empty scalar yields itself as a single entry, and absent
// or empty scalars yield nothing.
func (f Flex) Values() []string {
	switch f.kind {
	case flexAbsent, flexNull:
		return nil
	case flexList:
		out := make([]string, len(f.list))
		for i, v := range f.list {
			out[i] = v.String()
		}
		return out
	case flexString:
		if f.str == "" {
			return nil
		}
		return []string{f.str}
	case flexNumber:
		if f.num == 0 {
			return nil
		}
		return []string{f.String()}
	case flexBool:
		if !f.b {
			return nil
		}
		return []string{f.String()}
	default:
		return []string{f.String()}
	}
}

// Float coerces the value to a number. Non-coercible values yield NaN, which
// the formatting layer renders as the em-dash placeholder.
func (f Flex) Float() float64 {
	switch f.kind {
	case flexNumber:
		return f.num
	case flexString:
		s := strings.TrimSpace(f.str)
		if s == "" {
			return 0
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
		return math.NaN()
	case flexBool:
		if f.b {
			return 1
		}
		return 0
	case flexNull:
		return 0
	default:
		return math.NaN()
	}
}
