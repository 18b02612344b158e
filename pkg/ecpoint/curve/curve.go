package curve

// ID identifies a named elliptic curve.
// This is a stable Go enum that does not depend on any arithmetic backend.
type ID int

// Named curves known to the registry.
const (
	Unknown   ID = iota // Unknown or unsupported curve
	Secp256r1           // NIST P-256
	Secp384r1           // NIST P-384
	Secp521r1           // NIST P-521
	Secp256k1           // Bitcoin secp256k1
	Secp224r1           // NIST P-224
	Secp192r1           // NIST P-192
)

// String returns the TLS wire name of the curve.
func (c ID) String() string {
	switch c {
	case Secp256r1:
		return "secp256r1"
	case Secp384r1:
		return "secp384r1"
	case Secp521r1:
		return "secp521r1"
	case Secp256k1:
		return "secp256k1"
	case Secp224r1:
		return "secp224r1"
	case Secp192r1:
		return "secp192r1"
	default:
		return "unknown"
	}
}

// Extended reports whether the curve is only available when extended curve
// support is switched on.
func (c ID) Extended() bool {
	return c == Secp224r1 || c == Secp192r1
}

// NamedGroup returns the IANA TLS Supported Groups codepoint for the curve,
// or 0 for Unknown.
func (c ID) NamedGroup() uint16 {
	switch c {
	case Secp256r1:
		return 23
	case Secp384r1:
		return 24
	case Secp521r1:
		return 25
	case Secp256k1:
		return 22
	case Secp224r1:
		return 21
	case Secp192r1:
		return 19
	default:
		return 0
	}
}

// FromNamedGroup maps an IANA TLS Supported Groups codepoint to a curve.
// Codepoints that do not name one of the known curves yield Unknown.
func FromNamedGroup(group uint16) ID {
	for _, c := range All() {
		if c.NamedGroup() == group {
			return c
		}
	}
	return Unknown
}

// All returns every known curve in declaration order.
func All() []ID {
	return []ID{Secp256r1, Secp384r1, Secp521r1, Secp256k1, Secp224r1, Secp192r1}
}
