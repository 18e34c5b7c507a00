package calculator

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAdd(t *testing.T) {
	calc := New()

	cases := []struct {
		name       string
		a, b, want float64
	}{
		{"positive numbers", 5, 3, 8},
		{"negative numbers", -5, -3, -8},
		{"positive and negative", 5, -3, 2},
		{"negative and positive", -5, 3, -2},
		{"positive with zero", 5, 0, 5},
		{"zero with positive", 0, 5, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.Add(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddFloats(t *testing.T) {
	got, err := New().Add(2.5, 3.7)
	require.NoError(t, err)
	assert.InDelta(t, 6.2, got, 1e-9)
}

func TestSubtract(t *testing.T) {
	calc := New()

	got, err := calc.Subtract(10, 3)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	got, err = calc.Subtract(-10, -3)
	require.NoError(t, err)
	assert.Equal(t, -7.0, got)
}

func TestMultiply(t *testing.T) {
	calc := New()

	cases := []struct {
		a, b, want float64
	}{
		{4, 3, 12},
		{5, 0, 0},
		{-2, 3, -6},
		{MaxValue, MaxValue, 1e12},
	}

	for _, tc := range cases {
		got, err := calc.Multiply(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Multiply(%v, %v)", tc.a, tc.b)
	}
}

func TestDivide(t *testing.T) {
	calc := New()

	got, err := calc.Divide(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = calc.Divide(5.0, 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)
}

func TestDivideByZero(t *testing.T) {
	_, err := New().Divide(10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.EqualError(t, err, "Cannot divide by zero")
	assert.True(t, IsDivisionByZero(err))
	assert.False(t, IsInvalidInput(err))

	_, err = New().Divide(10, math.Copysign(0, -1))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivideValidatesBeforeZeroCheck(t *testing.T) {
	_, err := New().Divide(MaxValue+1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, IsDivisionByZero(err))
}

func TestInputValidation(t *testing.T) {
	calc := New()
	ops := map[string]func(a, b float64) (float64, error){
		"add":      calc.Add,
		"subtract": calc.Subtract,
		"multiply": calc.Multiply,
		"divide":   calc.Divide,
	}

	invalid := []struct {
		name string
		a, b float64
	}{
		{"a too large", MaxValue + 1, 1},
		{"a too small", MinValue - 1, 1},
		{"b too large", 1, MaxValue + 1},
		{"b too small", 1, MinValue - 1},
		{"a barely above", MaxValue + 0.5, 1},
		{"NaN", math.NaN(), 1},
		{"positive infinity", 1, math.Inf(1)},
		{"negative infinity", math.Inf(-1), 1},
	}

	for opName, op := range ops {
		for _, tc := range invalid {
			t.Run(opName+"/"+tc.name, func(t *testing.T) {
				got, err := op(tc.a, tc.b)
				require.Error(t, err)
				assert.True(t, IsInvalidInput(err))
				assert.EqualError(t, err, "Inputs must be between -1000000 and 1000000")
				assert.Zero(t, got)
			})
		}
	}
}

func TestBoundaryValues(t *testing.T) {
	calc := New()

	for _, bound := range []float64{MinValue, MaxValue} {
		got, err := calc.Add(bound, 0)
		require.NoError(t, err)
		assert.Equal(t, bound, got)

		got, err = calc.Add(0, bound)
		require.NoError(t, err)
		assert.Equal(t, bound, got)
	}

	// Results may leave the operand range.
	got, err := calc.Add(MaxValue, MaxValue)
	require.NoError(t, err)
	assert.Equal(t, 2.0*MaxValue, got)
}

func TestArithmeticProperties(t *testing.T) {
	calc := New()
	values := []float64{MinValue, -999_999.5, -42, -1, -0.25, 0, 0.1, 1, 7, 123_456.789, MaxValue}

	for _, a := range values {
		for _, b := range values {
			sum, err := calc.Add(a, b)
			require.NoError(t, err)
			assert.Equal(t, a+b, sum)

			rev, err := calc.Add(b, a)
			require.NoError(t, err)
			assert.Equal(t, sum, rev, "add must be commutative for %v, %v", a, b)

			diff, err := calc.Subtract(a, b)
			require.NoError(t, err)
			assert.Equal(t, a-b, diff)

			prod, err := calc.Multiply(a, b)
			require.NoError(t, err)
			assert.Equal(t, a*b, prod)

			if b == 0 {
				continue
			}
			quot, err := calc.Divide(a, b)
			require.NoError(t, err)
			assert.Equal(t, a/b, quot)
		}
	}
}

func TestZeroValueCalculator(t *testing.T) {
	var calc Calculator
	got, err := calc.Multiply(6, 7)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

func TestConcurrentUse(t *testing.T) {
	calc := New()
	g, _ := errgroup.WithContext(context.Background())

	for i := 0; i < 64; i++ {
		a := float64(i * 1000)
		g.Go(func() error {
			for j := 1; j <= 100; j++ {
				b := float64(j)
				got, err := calc.Divide(a, b)
				if err != nil {
					return err
				}
				if got != a/b {
					t.Errorf("Divide(%v, %v) = %v; want %v", a, b, got, a/b)
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
