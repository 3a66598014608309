package queries_test

import (
	"testing"

	"ordersvc/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQuery("ORD-1700000000000-A1B2C3D4")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "ORD-1700000000000-A1B2C3D4", query.OrderID())
}

func TestNewGetOrderQuery_EmptyOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderIDIsRequired)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
