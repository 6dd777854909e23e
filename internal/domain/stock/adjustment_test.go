package stock_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/ledgerly-api/internal/domain"
	"github.com/ledgerly/ledgerly-api/internal/domain/stock"
)

func TestComputeAdjustment_Add(t *testing.T) {
	got, err := stock.ComputeAdjustment(10, 5, stock.ModeAdd)
	require.NoError(t, err)
	assert.Equal(t, int64(15), got)

	got, err = stock.ComputeAdjustment(0, 1, stock.ModeAdd)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestComputeAdjustment_Remove(t *testing.T) {
	got, err := stock.ComputeAdjustment(10, 4, stock.ModeRemove)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)

	// retirar exactamente todo el stock es válido y deja cero
	got, err = stock.ComputeAdjustment(10, 10, stock.ModeRemove)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

// TestComputeAdjustment_RemoveInsuficiente retirar más del stock actual se
// rechaza, nunca se recorta a cero.
func TestComputeAdjustment_RemoveInsuficiente(t *testing.T) {
	_, err := stock.ComputeAdjustment(10, 11, stock.ModeRemove)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = stock.ComputeAdjustment(0, 1, stock.ModeRemove)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestComputeAdjustment_Set(t *testing.T) {
	got, err := stock.ComputeAdjustment(10, 0, stock.ModeSet)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	got, err = stock.ComputeAdjustment(3, 42, stock.ModeSet)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestComputeAdjustment_SetNegativo(t *testing.T) {
	_, err := stock.ComputeAdjustment(10, -1, stock.ModeSet)
	assert.ErrorIs(t, err, domain.ErrNegativeTarget)
}

// TestComputeAdjustment_CantidadNoFinita NaN e infinitos fallan con
// ErrInvalidAmount antes de cualquier otra regla.
func TestComputeAdjustment_CantidadNoFinita(t *testing.T) {
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := stock.ComputeAdjustment(10, amount, stock.ModeAdd)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = stock.ComputeAdjustment(10, amount, stock.ModeSet)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
}

// TestComputeAdjustment_CantidadFraccionaria el stock se cuenta en unidades
// enteras; una cantidad con decimales es inválida, no se trunca.
func TestComputeAdjustment_CantidadFraccionaria(t *testing.T) {
	_, err := stock.ComputeAdjustment(10, 2.5, stock.ModeAdd)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// TestComputeAdjustment_OrdenDeValidacion la regla de finitud va primero:
// un NaN en remove reporta ErrInvalidAmount, no ErrNonPositiveAmount.
func TestComputeAdjustment_OrdenDeValidacion(t *testing.T) {
	_, err := stock.ComputeAdjustment(10, math.NaN(), stock.ModeRemove)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	// cero en add/remove es no-positivo, no insuficiente
	_, err = stock.ComputeAdjustment(0, 0, stock.ModeRemove)
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
	_, err = stock.ComputeAdjustment(10, -3, stock.ModeAdd)
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
}

func TestComputeAdjustment_ModoDesconocido(t *testing.T) {
	_, err := stock.ComputeAdjustment(10, 1, stock.Mode("merge"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, stock.ModeAdd.Valid())
	assert.True(t, stock.ModeRemove.Valid())
	assert.True(t, stock.ModeSet.Valid())
	assert.False(t, stock.Mode("").Valid())
	assert.False(t, stock.Mode("ADD").Valid())
}
