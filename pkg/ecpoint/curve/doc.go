// Package curve identifies the named elliptic curves that can appear in a TLS
// key exchange and exposes the field parameters needed to size their points.
//
// # Supported Curves
//
//   - Secp256r1 (NIST P-256)
//   - Secp384r1 (NIST P-384)
//   - Secp521r1 (NIST P-521)
//   - Secp256k1 (Bitcoin curve)
//   - Secp224r1 (NIST P-224, extended)
//   - Secp192r1 (NIST P-192, extended)
//
// The extended curves are always known to this package. Whether a peer may
// negotiate them is a policy decision made by the registry in package ecpoint.
//
// # Parameters
//
// Curve parameters come from the arithmetic libraries rather than being
// restated here: crypto/elliptic for the NIST P curves and btcec for
// secp256k1. secp192r1 has no maintained Go implementation, so its SEC 2
// domain parameters are carried as constants.
//
//	p := curve.Secp384r1.Prime()
//	width := curve.FieldBytes(p) // 48
package curve
