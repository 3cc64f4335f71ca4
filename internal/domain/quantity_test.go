package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseShares(t *testing.T) {
	shares, err := ParseShares(" 10.5 ")
	require.NoError(t, err)
	require.Equal(t, "10.5", shares.String())

	shares, err = ParseShares("0.123456789")
	require.NoError(t, err)
	require.Equal(t, "0.12345679", shares.String())

	for _, in := range []string{"", "abc", "0", "-1", "0.000000001"} {
		_, err := ParseShares(in)
		require.ErrorIs(t, err, ErrInvalidInput, in)
	}
}

func Test_ParseAmount(t *testing.T) {
	amount, err := ParseAmount("100.005")
	require.NoError(t, err)
	require.Equal(t, "100.01", amount.String())

	for _, in := range []string{"x", "0", "-5", "0.001"} {
		_, err := ParseAmount(in)
		require.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func Test_ParsePercent(t *testing.T) {
	p, err := ParsePercent("33.3333")
	require.NoError(t, err)
	require.Equal(t, "33.3333", p.String())

	_, err = ParsePercent("33.33333")
	require.ErrorIs(t, err, ErrInvalidPercent)

	_, err = ParsePercent("ten")
	require.ErrorIs(t, err, ErrInvalidPercent)

	_, err = ParsePercent("-1")
	require.ErrorIs(t, err, ErrNegativePercent)
}

func Test_FormatUSD(t *testing.T) {
	require.Equal(t, "$1,500.00", FormatUSD(d("1500")))
	require.Equal(t, "$0.13", FormatUSD(d("0.125")))
}

func Test_IsBusinessError(t *testing.T) {
	require.True(t, IsBusinessError(ErrInsufficientFunds))
	require.False(t, IsBusinessError(ErrNotFound))
}
