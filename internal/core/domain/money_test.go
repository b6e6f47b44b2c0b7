package domain_test

import (
	"testing"

	"github.com/Habanerio/Xpnss-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestMoney_FromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain amount", input: "100.50", want: "100.50"},
		{name: "rounds to two places", input: "10.005", want: "10.01"},
		{name: "negative allowed", input: "-3.25", want: "-3.25"},
		{name: "integer", input: "42", want: "42.00"},
		{name: "garbage rejected", input: "not-a-number", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.MoneyFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMoney_FromFloatRejectsNonFinite(t *testing.T) {
	_, err := domain.MoneyFromFloat(nan())
	assert.Error(t, err)

	_, err = domain.MoneyFromFloat(posInf())
	assert.Error(t, err)

	got, err := domain.MoneyFromFloat(12.344)
	require.NoError(t, err)
	assert.Equal(t, "12.34", got.String())
}

func nan() float64    { z := 0.0; return z / z }
func posInf() float64 { z := 0.0; return 1 / z }

func TestMoney_Arithmetic(t *testing.T) {
	a := mustMoney(t, "100.10")
	b := mustMoney(t, "0.20")

	assert.Equal(t, "100.30", a.Add(b).String())
	assert.Equal(t, "99.90", a.Sub(b).String())
	assert.Equal(t, "-100.10", a.Negate().String())
	assert.Equal(t, "100.10", a.Negate().Abs().String())

	// Operands are unchanged; Money is a value type.
	assert.Equal(t, "100.10", a.String())
	assert.Equal(t, "0.20", b.String())
}

func TestMoney_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 is the classic binary-float trap.
	sum := mustMoney(t, "0.10").Add(mustMoney(t, "0.20"))
	assert.True(t, sum.Equal(mustMoney(t, "0.30")))

	// Repeated addition stays exact at scale 2.
	total := domain.ZeroMoney()
	penny := mustMoney(t, "0.01")
	for i := 0; i < 1000; i++ {
		total = total.Add(penny)
	}
	assert.Equal(t, "10.00", total.String())
}

func TestMoney_Comparison(t *testing.T) {
	small := mustMoney(t, "1.00")
	big := mustMoney(t, "2.00")

	assert.True(t, small.LessThan(big))
	assert.True(t, small.LessThanOrEqual(big))
	assert.True(t, big.GreaterThan(small))
	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.Equal(t, 0, small.Cmp(mustMoney(t, "1.00")))

	// Equality is by numeric value, not representation.
	assert.True(t, domain.NewMoney(decimal.NewFromInt(1)).Equal(mustMoney(t, "1.00")))
}

func TestMoney_ZeroAndNegative(t *testing.T) {
	assert.True(t, domain.ZeroMoney().IsZero())
	assert.False(t, domain.ZeroMoney().IsNegative())
	assert.True(t, mustMoney(t, "-0.01").IsNegative())
}
