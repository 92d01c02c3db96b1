package domain

import (
	"encoding/json"
	"errors"
)

// ErrUnknownScheme indicates a payment scheme that is not supported.
var ErrUnknownScheme = errors.New("unknown payment scheme")

// PaymentScheme is the payment rail a request is sent through.
type PaymentScheme int

// Supported payment schemes. SchemeUnknown is never eligible.
const (
	SchemeUnknown PaymentScheme = iota
	SchemeFasterPayments
	SchemeBacs
	SchemeChaps
)

var schemeNames = map[PaymentScheme]string{
	SchemeFasterPayments: "FasterPayments",
	SchemeBacs:           "Bacs",
	SchemeChaps:          "Chaps",
}

// Schemes lists every supported payment scheme.
var Schemes = []PaymentScheme{SchemeFasterPayments, SchemeBacs, SchemeChaps}

func (s PaymentScheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}

	return "Unknown"
}

// ParseScheme returns the scheme for its text name.
func ParseScheme(name string) (PaymentScheme, error) {
	for scheme, n := range schemeNames {
		if n == name {
			return scheme, nil
		}
	}

	return SchemeUnknown, ErrUnknownScheme
}

// MarshalText implements encoding.TextMarshaler.
func (s PaymentScheme) MarshalText() ([]byte, error) {
	if _, ok := schemeNames[s]; !ok {
		return nil, ErrUnknownScheme
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PaymentScheme) UnmarshalText(text []byte) error {
	scheme, err := ParseScheme(string(text))
	if err != nil {
		return err
	}

	*s = scheme

	return nil
}

// AllowedSchemes is the set of schemes an account may use as a debtor.
type AllowedSchemes uint8

// Scheme flags, combinable with |.
const (
	AllowFasterPayments AllowedSchemes = 1 << iota
	AllowBacs
	AllowChaps
)

func (s PaymentScheme) flag() AllowedSchemes {
	switch s {
	case SchemeFasterPayments:
		return AllowFasterPayments
	case SchemeBacs:
		return AllowBacs
	case SchemeChaps:
		return AllowChaps
	default:
		return 0
	}
}

// SchemesOf builds the set holding the given schemes.
func SchemesOf(schemes ...PaymentScheme) AllowedSchemes {
	var set AllowedSchemes
	for _, s := range schemes {
		set |= s.flag()
	}

	return set
}

// Has reports whether the scheme is in the set.
func (a AllowedSchemes) Has(s PaymentScheme) bool {
	f := s.flag()
	return f != 0 && a&f == f
}

// Schemes returns the members of the set in declaration order.
func (a AllowedSchemes) Schemes() []PaymentScheme {
	members := []PaymentScheme{}

	for _, s := range Schemes {
		if a.Has(s) {
			members = append(members, s)
		}
	}

	return members
}

// MarshalJSON encodes the set as a list of scheme names.
func (a AllowedSchemes) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Schemes())
}

// UnmarshalJSON decodes a list of scheme names.
func (a *AllowedSchemes) UnmarshalJSON(data []byte) error {
	var schemes []PaymentScheme
	if err := json.Unmarshal(data, &schemes); err != nil {
		return err
	}

	*a = SchemesOf(schemes...)

	return nil
}
