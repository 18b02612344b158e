// Package ecpoint encodes and decodes elliptic-curve public keys in the
// X9.62 uncompressed format used by TLS ECDH and ECDSA key exchange, and
// resolves TLS named curves to the field widths that size that format.
//
// A Registry is built once from a Config and never changes afterwards:
//
//	reg := ecpoint.NewRegistry(ecpoint.Config{ExtendedCurves: false})
//	id, err := reg.Resolve("secp384r1")
//
// A Codec turns peer bytes into a Point and back:
//
//	codec := ecpoint.NewCodec(reg)
//	p, err := codec.Decode(peerKey, id)
//	wire, err := codec.Encode(p)
//
// Every failure is returned as an error wrapping one of ErrUnknownCurveName,
// ErrUnsupportedCurve, ErrMalformedEncoding, ErrTruncatedInput or
// ErrEncodingOverflow. Nothing in the package panics on peer input.
//
// # Security Considerations
//
// Decode checks the framing only. It does not verify that the point lies on
// the curve or in the prime-order subgroup; that is the arithmetic layer's
// job and must happen before the point is used in ECDH.
package ecpoint
