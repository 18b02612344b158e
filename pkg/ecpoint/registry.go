package ecpoint

import (
	"context"
	"fmt"

	"github.com/coinbase/ecpoint-go/pkg/ecpoint/curve"
	"github.com/coinbase/ecpoint-go/pkg/ecpoint/logging"
)

// byteWidths holds the field-element width of every known curve, equal to
// ceil(bitlen(prime)/8).
var byteWidths = map[curve.ID]int{
	curve.Secp256r1: 32,
	curve.Secp384r1: 48,
	curve.Secp521r1: 66,
	curve.Secp256k1: 32,
	curve.Secp224r1: 28,
	curve.Secp192r1: 24,
}

// Registry maps TLS wire curve names to curve identities and their field
// widths. It is immutable once built and safe for concurrent use.
type Registry struct {
	cfg    Config
	byName map[string]curve.ID
	widths map[curve.ID]int
	order  []curve.ID
}

// Option customizes registry construction.
type Option func(*registryOptions)

type registryOptions struct {
	logger logging.Logger
}

// WithLogger routes the construction record to logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *registryOptions) {
		o.logger = logger
	}
}

// NewRegistry builds the curve table for cfg.
func NewRegistry(cfg Config, opts ...Option) *Registry {
	o := registryOptions{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{
		cfg:    cfg,
		byName: make(map[string]curve.ID),
		widths: make(map[curve.ID]int),
	}
	for _, id := range curve.All() {
		if id.Extended() && !cfg.ExtendedCurves {
			continue
		}
		r.byName[id.String()] = id
		r.widths[id] = byteWidths[id]
		r.order = append(r.order, id)
	}

	o.logger.Debug(context.Background(), "curve registry built",
		"extended_curves", cfg.ExtendedCurves,
		"curves", len(r.order),
	)
	return r
}

// Config returns the policy the registry was built with.
func (r *Registry) Config() Config {
	return r.cfg
}

// Resolve looks up a case-sensitive TLS curve name.
func (r *Registry) Resolve(name string) (curve.ID, error) {
	if id, ok := r.byName[name]; ok {
		return id, nil
	}
	for _, id := range curve.All() {
		if id.Extended() && id.String() == name {
			return curve.Unknown, disabledCurveError(name)
		}
	}
	return curve.Unknown, fmt.Errorf("%w: %q", ErrUnknownCurveName, name)
}

// ResolveNamedGroup looks up an IANA TLS Supported Groups codepoint.
func (r *Registry) ResolveNamedGroup(group uint16) (curve.ID, error) {
	id := curve.FromNamedGroup(group)
	if id == curve.Unknown {
		return curve.Unknown, fmt.Errorf("%w: named group %d", ErrUnknownCurveName, group)
	}
	if _, ok := r.widths[id]; !ok {
		return curve.Unknown, disabledCurveError(id.String())
	}
	return id, nil
}

// ByteWidth returns the field-element width L for id.
func (r *Registry) ByteWidth(id curve.ID) (int, error) {
	width, ok := r.widths[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurve, id)
	}
	return width, nil
}

// EncodedLen returns the length of an uncompressed point on id, 1+2L.
func (r *Registry) EncodedLen(id curve.ID) (int, error) {
	width, err := r.ByteWidth(id)
	if err != nil {
		return 0, err
	}
	return 1 + 2*width, nil
}

// Supported returns the enabled curves in a stable order.
func (r *Registry) Supported() []curve.ID {
	out := make([]curve.ID, len(r.order))
	copy(out, r.order)
	return out
}
