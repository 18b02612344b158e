package ecpoint_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/ecpoint-go/pkg/ecpoint"
	"github.com/coinbase/ecpoint-go/pkg/ecpoint/curve"
)

// TestResolveDefaultCurves tests name -> identity -> width on a default registry.
func TestResolveDefaultCurves(t *testing.T) {
	reg := ecpoint.NewRegistry(ecpoint.Config{})

	tests := []struct {
		name      string
		wantCurve curve.ID
		wantWidth int
	}{
		{"secp256r1", curve.Secp256r1, 32},
		{"secp384r1", curve.Secp384r1, 48},
		{"secp521r1", curve.Secp521r1, 66},
		{"secp256k1", curve.Secp256k1, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := reg.Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.name, err)
			}
			if id != tt.wantCurve {
				t.Errorf("Resolve(%q) = %s, want %s", tt.name, id, tt.wantCurve)
			}
			width, err := reg.ByteWidth(id)
			if err != nil {
				t.Fatalf("ByteWidth(%s) failed: %v", id, err)
			}
			if width != tt.wantWidth {
				t.Errorf("ByteWidth(%s) = %d, want %d", id, width, tt.wantWidth)
			}
		})
	}
}

func TestResolveExtendedCurves(t *testing.T) {
	enabled := ecpoint.NewRegistry(ecpoint.Config{ExtendedCurves: true})
	disabled := ecpoint.NewRegistry(ecpoint.Config{})

	for name, wantWidth := range map[string]int{"secp224r1": 28, "secp192r1": 24} {
		t.Run(name, func(t *testing.T) {
			id, err := enabled.Resolve(name)
			require.NoError(t, err)
			width, err := enabled.ByteWidth(id)
			require.NoError(t, err)
			assert.Equal(t, wantWidth, width)

			_, err = disabled.Resolve(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ecpoint.ErrUnsupportedCurve)
			assert.ErrorIs(t, err, ecpoint.ErrUnknownCurveName)

			_, err = disabled.ByteWidth(id)
			assert.ErrorIs(t, err, ecpoint.ErrUnsupportedCurve)
		})
	}
}

func TestResolveUnknownName(t *testing.T) {
	reg := ecpoint.NewRegistry(ecpoint.Config{ExtendedCurves: true})

	for _, name := range []string{"secp999", "", "SECP256R1", "P-256", "x25519"} {
		_, err := reg.Resolve(name)
		if !errors.Is(err, ecpoint.ErrUnknownCurveName) {
			t.Errorf("Resolve(%q) error = %v, want ErrUnknownCurveName", name, err)
		}
		if errors.Is(err, ecpoint.ErrUnsupportedCurve) {
			t.Errorf("Resolve(%q) should not report ErrUnsupportedCurve", name)
		}
	}
}

func TestByteWidthUnknown(t *testing.T) {
	reg := ecpoint.NewRegistry(ecpoint.Config{ExtendedCurves: true})
	_, err := reg.ByteWidth(curve.Unknown)
	assert.ErrorIs(t, err, ecpoint.ErrUnsupportedCurve)
	_, err = reg.ByteWidth(curve.ID(42))
	assert.ErrorIs(t, err, ecpoint.ErrUnsupportedCurve)
}

// TestByteWidthMatchesPrime keeps the constant table consistent with the
// arithmetic library's primes.
func TestByteWidthMatchesPrime(t *testing.T) {
	reg := ecpoint.NewRegistry(ecpoint.Config{ExtendedCurves: true})
	for _, id := range curve.All() {
		width, err := reg.ByteWidth(id)
		require.NoError(t, err, id.String())
		assert.Equal(t, curve.FieldBytes(id.Prime()), width, id.String())

		n, err := reg.EncodedLen(id)
		require.NoError(t, err)
		assert.Equal(t, 1+2*width, n)
	}
}

func TestResolveNamedGroup(t *testing.T) {
	reg := ecpoint.NewRegistry(ecpoint.Config{})

	id, err := reg.ResolveNamedGroup(23)
	require.NoError(t, err)
	assert.Equal(t, curve.Secp256r1, id)

	id, err = reg.ResolveNamedGroup(22)
	require.NoError(t, err)
	assert.Equal(t, curve.Secp256k1, id)

	_, err = reg.ResolveNamedGroup(21)
	assert.ErrorIs(t, err, ecpoint.ErrUnsupportedCurve)

	_, err = reg.ResolveNamedGroup(29) // x25519
	assert.ErrorIs(t, err, ecpoint.ErrUnknownCurveName)
}

func TestSupported(t *testing.T) {
	def := ecpoint.NewRegistry(ecpoint.Config{})
	assert.Equal(t, []curve.ID{curve.Secp256r1, curve.Secp384r1, curve.Secp521r1, curve.Secp256k1}, def.Supported())
	assert.False(t, def.Config().ExtendedCurves)

	ext := ecpoint.NewRegistry(ecpoint.Config{ExtendedCurves: true})
	assert.Equal(t, curve.All(), ext.Supported())

	// Mutating the returned slice must not affect the registry.
	s := ext.Supported()
	s[0] = curve.Unknown
	assert.Equal(t, curve.Secp256r1, ext.Supported()[0])
}

// TestIndependentRegistries verifies two policies can coexist.
func TestIndependentRegistries(t *testing.T) {
	a := ecpoint.NewRegistry(ecpoint.Config{ExtendedCurves: true})
	b := ecpoint.NewRegistry(ecpoint.Config{})

	_, errA := a.Resolve("secp192r1")
	_, errB := b.Resolve("secp192r1")
	assert.NoError(t, errA)
	assert.Error(t, errB)
}

func TestRegistryConcurrentReads(t *testing.T) {
	reg := ecpoint.NewRegistry(ecpoint.Config{ExtendedCurves: true})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range curve.All() {
				got, err := reg.Resolve(id.String())
				if err != nil || got != id {
					t.Errorf("Resolve(%s) = %s, %v", id, got, err)
					return
				}
				if _, err := reg.ByteWidth(id); err != nil {
					t.Errorf("ByteWidth(%s): %v", id, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
