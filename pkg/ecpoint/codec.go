package ecpoint

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"

	"github.com/coinbase/ecpoint-go/pkg/ecpoint/curve"
)

// uncompressedTag is the X9.62 format byte for an uncompressed point.
const uncompressedTag = 0x04

// Codec converts points to and from the X9.62 uncompressed encoding
//
//	0x04 | x (L bytes, big-endian) | y (L bytes, big-endian)
//
// where L is the field-element width the registry reports for the curve.
// Encode and decode share that single width source. A Codec is stateless
// apart from its registry and safe for concurrent use.
type Codec struct {
	reg *Registry
}

// NewCodec returns a codec bound to reg. A nil reg selects a registry built
// from the zero Config.
func NewCodec(reg *Registry) *Codec {
	if reg == nil {
		reg = defaultRegistry
	}
	return &Codec{reg: reg}
}

// Registry returns the registry the codec sizes points with.
func (c *Codec) Registry() *Registry {
	return c.reg
}

// Decode parses buf as exactly one uncompressed point on id. curve.Unknown
// selects secp256r1.
//
// Decode does not check that the point satisfies the curve equation or lies
// in the prime-order subgroup. Callers performing ECDH must validate the
// result with their arithmetic library before use.
func (c *Codec) Decode(buf []byte, id curve.ID) (*Point, error) {
	s := cryptobyte.String(buf)
	p, err := c.ReadPoint(&s, id)
	if err != nil {
		return nil, err
	}
	if !s.Empty() {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedEncoding, len(s))
	}
	return p, nil
}

// ReadPoint consumes one uncompressed point on id from s. On failure s is left
// unchanged.
func (c *Codec) ReadPoint(s *cryptobyte.String, id curve.ID) (*Point, error) {
	if id == curve.Unknown {
		id = curve.Secp256r1
	}
	in := *s

	var tag uint8
	if !in.ReadUint8(&tag) {
		return nil, fmt.Errorf("%w: missing format byte", ErrTruncatedInput)
	}
	if tag != uncompressedTag {
		return nil, fmt.Errorf("%w: format byte 0x%02x", ErrMalformedEncoding, tag)
	}

	width, err := c.reg.ByteWidth(id)
	if err != nil {
		return nil, err
	}

	var x, y []byte
	if !in.ReadBytes(&x, width) || !in.ReadBytes(&y, width) {
		return nil, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncatedInput, id, 1+2*width, len(*s))
	}

	*s = in
	return &Point{
		X:     new(big.Int).SetBytes(x),
		Y:     new(big.Int).SetBytes(y),
		Curve: id,
	}, nil
}

// Encode returns the uncompressed encoding of p, exactly 1+2L bytes long.
func (c *Codec) Encode(p *Point) ([]byte, error) {
	b := cryptobyte.NewBuilder(nil)
	if err := c.AddPoint(b, p); err != nil {
		return nil, err
	}
	return b.Bytes()
}

// AddPoint appends the uncompressed encoding of p to b. Nothing is written
// when an error is returned.
func (c *Codec) AddPoint(b *cryptobyte.Builder, p *Point) error {
	if p == nil {
		return fmt.Errorf("%w: nil point", ErrEncodingOverflow)
	}
	width, err := c.reg.ByteWidth(p.Curve)
	if err != nil {
		return err
	}

	buf := make([]byte, 1+2*width)
	buf[0] = uncompressedTag
	if err := fill(buf[1:1+width], p.X, "x"); err != nil {
		return err
	}
	if err := fill(buf[1+width:], p.Y, "y"); err != nil {
		return err
	}
	b.AddBytes(buf)
	return nil
}

// fill writes v big-endian into dst, zero-padded on the left.
func fill(dst []byte, v *big.Int, coord string) error {
	switch {
	case v == nil:
		return fmt.Errorf("%w: %s coordinate is nil", ErrEncodingOverflow, coord)
	case v.Sign() < 0:
		return fmt.Errorf("%w: %s coordinate is negative", ErrEncodingOverflow, coord)
	case v.BitLen() > 8*len(dst):
		return fmt.Errorf("%w: %s coordinate needs %d bytes, width is %d", ErrEncodingOverflow, coord, (v.BitLen()+7)/8, len(dst))
	}
	v.FillBytes(dst)
	return nil
}

var (
	defaultRegistry = NewRegistry(Config{})
	defaultCodec    = NewCodec(defaultRegistry)
)

// Resolve looks up name in a registry built from the zero Config.
func Resolve(name string) (curve.ID, error) {
	return defaultRegistry.Resolve(name)
}

// Decode parses buf with a codec over the zero-Config registry.
func Decode(buf []byte, id curve.ID) (*Point, error) {
	return defaultCodec.Decode(buf, id)
}

// Encode serializes p with a codec over the zero-Config registry.
func Encode(p *Point) ([]byte, error) {
	return defaultCodec.Encode(p)
}
