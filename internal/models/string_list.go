package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	listSeparator = ','
	listEscape    = '\\'
)

// StringList is an ordered list of strings persisted as a single delimited
// TEXT column. Items containing the separator or escape rune are escaped so
// every list round-trips exactly.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return l.encode(), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = decodeList(v)
	case []byte:
		*l = decodeList(string(v))
	default:
		return fmt.Errorf("string list: unsupported column type %T", src)
	}
	return nil
}

// MarshalJSON renders nil as an empty array.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l StringList) encode() string {
	if len(l) == 1 && l[0] == "" {
		// A lone escape keeps [""] distinct from the empty list.
		return string(listEscape)
	}
	var b strings.Builder
	for i, item := range l {
		if i > 0 {
			b.WriteRune(listSeparator)
		}
		for _, r := range item {
			if r == listSeparator || r == listEscape {
				b.WriteRune(listEscape)
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func decodeList(s string) StringList {
	out := StringList{}
	if s == "" {
		return out
	}
	var cur strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == listEscape:
			escaped = true
		case r == listSeparator:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(out, cur.String())
}
