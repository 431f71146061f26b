package queries_test

import (
	"testing"

	"watertanker/internal/core/application/usecases/queries"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/core/domain/model/recycling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSubmissionsQuery_Valid(t *testing.T) {
	customerID := kernel.NewUUID()
	status := recycling.StatusPendingReview
	query, err := queries.NewGetSubmissionsQuery(&customerID, &status, 0, 20)
	require.NoError(t, err)
	require.NotNil(t, query.CustomerID())
	assert.True(t, query.CustomerID().IsEqual(customerID))
	require.NotNil(t, query.Status())
	assert.Equal(t, recycling.StatusPendingReview, *query.Status())
	assert.Equal(t, 20, query.Limit())
}

func TestNewGetSubmissionsQuery_InvalidCustomerID(t *testing.T) {
	badID := kernel.UUID{}
	_, err := queries.NewGetSubmissionsQuery(&badID, nil, 0, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetCustomersQuery_Defaults(t *testing.T) {
	query, err := queries.NewGetCustomersQuery(0, -5)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultPageSize, query.Limit())
}

func TestNewGetDriversQuery_ActiveOnly(t *testing.T) {
	query, err := queries.NewGetDriversQuery(true, 0, 10)
	require.NoError(t, err)
	assert.True(t, query.ActiveOnly())
}

func TestNewGetReportsQuery_Valid(t *testing.T) {
	query := queries.NewGetReportsQuery()
	require.NoError(t, query.Validate())
}

func TestGetReportsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetReportsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetReportsQueryIsNotConstructed)
}
