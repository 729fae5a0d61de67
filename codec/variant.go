package codec

import (
	"errors"
	"fmt"
)

// Variant selects one of the two JSON codecs.
type Variant int

const (
	GrammarVariant Variant = iota
	DirectVariant
)

var ErrBadVariant = errors.New("bad codec variant")

func ParseVariant(v string) (Variant, error) {
	res, ok := map[string]Variant{
		"g":       GrammarVariant,
		"grammar": GrammarVariant,
		"d":       DirectVariant,
		"direct":  DirectVariant,
	}[v]
	if ok {
		return res, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadVariant, v)
}

func (v Variant) String() string {
	d, err := v.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (v Variant) MarshalText() ([]byte, error) {
	switch v {
	case GrammarVariant:
		return []byte("grammar"), nil
	case DirectVariant:
		return []byte("direct"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a codec variant>", v)
	}
}

func (v *Variant) UnmarshalText(d []byte) error {
	pv, err := ParseVariant(string(d))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

// Variants returns all variants.
func Variants() []Variant {
	return []Variant{GrammarVariant, DirectVariant}
}

// For returns the codec of variant v with default options.
func For(v Variant) Codec {
	if v == DirectVariant {
		return Direct{}
	}
	return Grammar{}
}
