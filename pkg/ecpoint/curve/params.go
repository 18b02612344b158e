package curve

import (
	"crypto/elliptic"
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
)

var (
	p192Once   sync.Once
	p192Params *elliptic.CurveParams
)

// See SEC 2 v1.0, section 2.2.2.
func initP192() {
	p := new(elliptic.CurveParams)
	p.Name = "P-192"
	p.P, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffeffffffffffffffff", 16)
	p.N, _ = new(big.Int).SetString("ffffffffffffffffffffffff99def836146bc9b1b4d22831", 16)
	p.B, _ = new(big.Int).SetString("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1", 16)
	p.Gx, _ = new(big.Int).SetString("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012", 16)
	p.Gy, _ = new(big.Int).SetString("07192b95ffc8da78631011ed6b24cdd573f977a11e794811", 16)
	p.BitSize = 192
	p192Params = p
}

// Params returns the domain parameters for the curve as published by the
// arithmetic library, or nil for Unknown. The returned value is shared and
// must not be modified.
func (c ID) Params() *elliptic.CurveParams {
	switch c {
	case Secp256r1:
		return elliptic.P256().Params()
	case Secp384r1:
		return elliptic.P384().Params()
	case Secp521r1:
		return elliptic.P521().Params()
	case Secp256k1:
		return btcec.S256().Params()
	case Secp224r1:
		return elliptic.P224().Params()
	case Secp192r1:
		p192Once.Do(initP192)
		return p192Params
	default:
		return nil
	}
}

// Prime returns a copy of the field prime, or nil for Unknown.
func (c ID) Prime() *big.Int {
	params := c.Params()
	if params == nil {
		return nil
	}
	return new(big.Int).Set(params.P)
}

// FieldBytes returns the number of bytes needed to hold any value below p,
// ceil(bitlen(p)/8).
func FieldBytes(p *big.Int) int {
	if p == nil {
		return 0
	}
	return (p.BitLen() + 7) / 8
}
