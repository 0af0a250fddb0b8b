package signature

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivedSets(t *testing.T) {
	sig, err := New(
		Required("brightness", Int),
		Flag("nudge"),
		Flag("happy"),
		Optional("shaft", String, "gold"),
	)
	require.NoError(t, err)

	require.Equal(t, 4, sig.Len())

	var required []string
	for _, p := range sig.Required() {
		required = append(required, p.Name())
	}
	assert.Equal(t, []string{"brightness"}, required)

	var optional []string
	for _, p := range sig.Optional() {
		optional = append(optional, p.Name())
	}
	assert.Equal(t, []string{"nudge", "happy", "shaft"}, optional)

	var booleans []string
	for _, p := range sig.Booleans() {
		booleans = append(booleans, p.Name())
	}
	assert.Equal(t, []string{"nudge", "happy"}, booleans)
}

func TestNew_RejectsEmptyName(t *testing.T) {
	_, err := New(Required("", String))
	require.Error(t, err)
	cfgErr, ok := AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeEmptyName, cfgErr.Code)
}

func TestNew_RejectsDuplicateName(t *testing.T) {
	_, err := New(Required("data", String), Optional("data", Int, 1))
	require.Error(t, err)
	cfgErr, ok := AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeDuplicateName, cfgErr.Code)
}

func TestNew_RejectsTrueDefaultedBoolean(t *testing.T) {
	_, err := New(Optional("verbose", Bool, true))
	require.Error(t, err)
	cfgErr, ok := AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeBooleanDefault, cfgErr.Code)
}

func TestNew_FalseDefaultedBooleanIsPlainFlag(t *testing.T) {
	sig, err := New(Optional("verbose", Bool, false))
	require.NoError(t, err)
	p, ok := sig.Lookup("verbose")
	require.True(t, ok)
	assert.True(t, p.Boolean())
	assert.False(t, p.HasDefault())
}

func TestCheckPositionalOrder(t *testing.T) {
	ordered, err := New(
		Required("archer", String),
		Required("boulder", Float64),
		Optional("magic", Int, 42),
	)
	require.NoError(t, err)
	assert.NoError(t, ordered.CheckPositionalOrder())

	unordered, err := New(
		Required("archer", String),
		Optional("magic", Int, 42),
		Required("boulder", Float64),
	)
	require.NoError(t, err)
	err = unordered.CheckPositionalOrder()
	require.Error(t, err)
	cfgErr, ok := AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeParameterOrder, cfgErr.Code)
}

func TestCheckShortFlags(t *testing.T) {
	distinct, err := New(Required("data", String), Required("whatever", String))
	require.NoError(t, err)
	assert.NoError(t, distinct.CheckShortFlags())

	// brightness and boulder both start with b.
	colliding, err := New(Required("brightness", Int), Required("boulder", Float64))
	require.NoError(t, err)
	err = colliding.CheckShortFlags()
	require.Error(t, err)
	cfgErr, ok := AsConfigError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeShortFlagCollision, cfgErr.Code)
}

func TestLookupShort(t *testing.T) {
	sig, err := New(Required("number_of_faces", Int), Required("repetitions", Int))
	require.NoError(t, err)

	p, ok := sig.LookupShort('r')
	require.True(t, ok)
	assert.Equal(t, "repetitions", p.Name())

	_, ok = sig.LookupShort('x')
	assert.False(t, ok)
}

func TestWithDefaultCaster(t *testing.T) {
	sig, err := New(Required("archer", nil), Optional("magic", nil, 42))
	require.NoError(t, err)

	// Unresolved casters behave as strings.
	p, _ := sig.Lookup("archer")
	v, err := p.Cast("2")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	resolved, err := sig.WithDefaultCaster(Int)
	require.NoError(t, err)
	p, _ = resolved.Lookup("archer")
	v, err = p.Cast("2")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	// The receiver is untouched.
	p, _ = sig.Lookup("archer")
	v, err = p.Cast("2")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestWithDefaultCaster_NoUnresolved(t *testing.T) {
	sig, err := New(Required("archer", String))
	require.NoError(t, err)
	resolved, err := sig.WithDefaultCaster(Int)
	require.NoError(t, err)
	assert.Same(t, sig, resolved)
}

func TestCasters(t *testing.T) {
	v, err := Int("17")
	require.NoError(t, err)
	assert.Equal(t, 17, v)
	_, err = Int("seventeen")
	assert.Error(t, err)

	v, err = Float64("1.5")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
	_, err = Float64("x")
	assert.Error(t, err)

	v, err = Duration("250ms")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, v)

	v, err = String("as is")
	require.NoError(t, err)
	assert.Equal(t, "as is", v)
}

func TestIsBoolCaster(t *testing.T) {
	assert.True(t, IsBoolCaster(Bool))
	assert.False(t, IsBoolCaster(String))
	assert.False(t, IsBoolCaster(nil))

	// A custom caster returning bool is not the sentinel.
	custom := func(raw string) (any, error) { return true, nil }
	assert.False(t, IsBoolCaster(custom))
}

func TestCustomCaster(t *testing.T) {
	upper := func(raw string) (any, error) {
		out := ""
		for _, r := range raw {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out += string(r)
		}
		return out, nil
	}
	sig, err := New(Required("data", upper))
	require.NoError(t, err)
	p, _ := sig.Lookup("data")
	v, err := p.Cast("asdf")
	require.NoError(t, err)
	assert.Equal(t, "ASDF", v)
}
