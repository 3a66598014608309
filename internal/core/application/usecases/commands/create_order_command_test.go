package commands_test

import (
	"testing"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []commands.CreateOrderItem {
	t.Helper()
	price, err := kernel.NewMoneyFromString("15000")
	require.NoError(t, err)
	return []commands.CreateOrderItem{
		{ProductID: "PROD-1", ProductName: "Widget", UnitPrice: price, Quantity: 2},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("CUST-1", "Jane Doe", testItems(t))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "CUST-1", cmd.CustomerID())
		assert.Equal(t, "Jane Doe", cmd.CustomerName())
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("customer id is required", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", "Jane Doe", testItems(t))

		require.ErrorIs(t, err, commands.ErrCustomerIDIsRequired)
	})

	t.Run("customer name is required", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("CUST-1", "", testItems(t))

		require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("at least one item is required", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("CUST-1", "Jane Doe", nil)

		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
