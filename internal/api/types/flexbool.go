package types

import (
	"bytes"
	"fmt"
	"strings"
)

// FlexBool decodes JSON true/false as well as the 0/1 integers older clients send.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	v, err := ParseFlexBool(string(bytes.Trim(data, `"`)))
	if err != nil {
		return err
	}
	*b = FlexBool(v)
	return nil
}

// ParseFlexBool accepts "true", "false", "1" and "0", case-insensitively.
func ParseFlexBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// Ptr returns the value as a *bool, nil when b is nil.
func (b *FlexBool) Ptr() *bool {
	if b == nil {
		return nil
	}
	v := bool(*b)
	return &v
}
