package ecpoint

import (
	"fmt"
	"math/big"

	"github.com/coinbase/ecpoint-go/pkg/ecpoint/curve"
)

// Point is an affine public-key point as it crosses the wire. The curve field
// only sizes the encoding; Point does not check that (X, Y) lies on it.
type Point struct {
	X, Y  *big.Int
	Curve curve.ID
}

// NewPoint returns a point on c holding copies of x and y.
func NewPoint(c curve.ID, x, y *big.Int) *Point {
	p := &Point{Curve: c, X: new(big.Int), Y: new(big.Int)}
	if x != nil {
		p.X.Set(x)
	}
	if y != nil {
		p.Y.Set(y)
	}
	return p
}

// Equal reports whether p and q have the same curve and coordinates.
func (p *Point) Equal(q *Point) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.Curve != q.Curve {
		return false
	}
	return cmpInt(p.X, q.X) && cmpInt(p.Y, q.Y)
}

func cmpInt(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

func (p *Point) String() string {
	if p == nil {
		return "Point(nil)"
	}
	return fmt.Sprintf("Point(%s, x=%s, y=%s)", p.Curve, text(p.X), text(p.Y))
}

func text(v *big.Int) string {
	if v == nil {
		return "nil"
	}
	return "0x" + v.Text(16)
}
