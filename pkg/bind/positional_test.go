package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argbind/argbind/pkg/signature"
)

func robinSig(t *testing.T) *signature.Signature {
	t.Helper()
	sig, err := signature.New(
		signature.Required("archer", signature.String),
		signature.Required("boulder", signature.Float64),
		signature.Optional("magic", signature.Int, 42),
	)
	require.NoError(t, err)
	return sig
}

func TestPositional_ArityWindow(t *testing.T) {
	sig := robinSig(t)

	// k required, m optional: every count in [k, k+m] binds, anything
	// outside fails with the matching arity error.
	cases := []struct {
		tokens   []string
		wantCode string
		wantPos  []any
	}{
		{[]string{}, ErrCodeTooFewArguments, nil},
		{[]string{"a"}, ErrCodeTooFewArguments, nil},
		{[]string{"a", "1.0"}, "", []any{"a", 1.0}},
		{[]string{"a", "1.0", "7"}, "", []any{"a", 1.0, 7}},
		{[]string{"1", "2", "3", "4"}, ErrCodeTooManyArguments, nil},
	}
	for _, tc := range cases {
		res, err := Bind(Positional, sig, tc.tokens)
		if tc.wantCode != "" {
			require.Error(t, err, "tokens %v", tc.tokens)
			bindErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantCode, bindErr.Code, "tokens %v", tc.tokens)
			continue
		}
		require.NoError(t, err, "tokens %v", tc.tokens)
		assert.Equal(t, tc.wantPos, res.Positional)
		assert.Empty(t, res.Named)
	}
}

func TestPositional_CastFailure(t *testing.T) {
	sig := robinSig(t)
	_, err := Bind(Positional, sig, []string{"a", "rock"})
	require.Error(t, err)
	bindErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeCastFailed, bindErr.Code)
	assert.Equal(t, "boulder", bindErr.Parameter)
	assert.Equal(t, "rock", bindErr.Value)
	assert.Error(t, bindErr.Cause)
}

func TestPositional_TrailingDefaultOmitted(t *testing.T) {
	sig := robinSig(t)
	res, err := Bind(Positional, sig, []string{"a", "1.0"})
	require.NoError(t, err)
	// magic stays unbound so the callee default applies.
	assert.Len(t, res.Positional, 2)
	assert.Empty(t, res.Named)
}

func TestPositional_HyphenTokensAreValues(t *testing.T) {
	sig, err := signature.New(signature.Required("delta", signature.Int))
	require.NoError(t, err)
	res, err := Bind(Positional, sig, []string{"-3"})
	require.NoError(t, err)
	assert.Equal(t, []any{-3}, res.Positional)
}
