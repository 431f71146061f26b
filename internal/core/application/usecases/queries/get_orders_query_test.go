package queries_test

import (
	"testing"

	"watertanker/internal/core/application/usecases/queries"
	"watertanker/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	status := order.Pairing
	query, err := queries.NewGetOrdersQuery(&status, 10, 50)
	require.NoError(t, err)
	require.NotNil(t, query.Status())
	assert.Equal(t, order.Pairing, *query.Status())
	assert.Equal(t, 10, query.Skip())
	assert.Equal(t, 50, query.Limit())
}

func TestNewGetOrdersQuery_NoFilter(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(nil, 0, 0)
	require.NoError(t, err)
	assert.Nil(t, query.Status())
	assert.Equal(t, queries.DefaultPageSize, query.Limit())
}

func TestNewGetOrdersQuery_LimitClamped(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(nil, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, queries.MaxPageSize, query.Limit())
}

func TestNewGetOrdersQuery_NegativeSkipTreatedAsZero(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(nil, -1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, query.Skip())
	assert.Equal(t, 10, query.Limit())
}

func TestNewGetOrdersQuery_InvalidStatus(t *testing.T) {
	status := order.Unknown
	_, err := queries.NewGetOrdersQuery(&status, 0, 10)
	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
