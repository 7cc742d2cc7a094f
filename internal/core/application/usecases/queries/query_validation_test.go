package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/storeorder"

	"github.com/stretchr/testify/require"
)

func TestNewGetStoreOrdersQuery_Valid(t *testing.T) {
	storeID := kernel.NewUUID()
	status := storeorder.Pending

	query, err := queries.NewGetStoreOrdersQuery(storeID, &status)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.True(t, query.StoreID().IsEqual(storeID))
	require.Equal(t, storeorder.Pending, *query.Status())
}

func TestNewGetStoreOrdersQuery_NoFilter(t *testing.T) {
	query, err := queries.NewGetStoreOrdersQuery(kernel.NewUUID(), nil)
	require.NoError(t, err)
	require.Nil(t, query.Status())
}

func TestNewGetStoreOrdersQuery_EmptyStoreID(t *testing.T) {
	var empty kernel.UUID
	_, err := queries.NewGetStoreOrdersQuery(empty, nil)
	require.Error(t, err)
}

func TestNewGetStoreOrdersQuery_InvalidStatus(t *testing.T) {
	status := storeorder.Unknown
	_, err := queries.NewGetStoreOrdersQuery(kernel.NewUUID(), &status)
	require.Error(t, err)
}

func TestGetStoreOrdersQuery_ZeroValueFailsValidate(t *testing.T) {
	require.Error(t, queries.GetStoreOrdersQuery{}.Validate())
}

func TestNewGetBuyerOrdersQuery_Valid(t *testing.T) {
	buyerID := kernel.NewUUID()

	query, err := queries.NewGetBuyerOrdersQuery(buyerID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.True(t, query.BuyerID().IsEqual(buyerID))
}

func TestNewGetBuyerOrdersQuery_EmptyBuyerID(t *testing.T) {
	var empty kernel.UUID
	_, err := queries.NewGetBuyerOrdersQuery(empty)
	require.Error(t, err)
}

func TestGetBuyerOrdersQuery_ZeroValueFailsValidate(t *testing.T) {
	require.Error(t, queries.GetBuyerOrdersQuery{}.Validate())
}
