package ecpoint

// Config selects which named curves a registry accepts.
// A zero Config enables the four default curves only.
type Config struct {
	// ExtendedCurves additionally enables secp224r1 and secp192r1.
	ExtendedCurves bool
}
