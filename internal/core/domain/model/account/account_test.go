package account_test

import (
	"testing"

	"watertanker/internal/core/domain/model/account"
	"watertanker/internal/core/domain/model/kernel"
	"watertanker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromString(t *testing.T) {
	tests := []struct {
		in   string
		want account.Kind
	}{
		{"customer", account.KindCustomer},
		{"driver", account.KindDriver},
		{"staff", account.KindStaff},
		{"superadmin", account.KindSuperAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := account.KindFromString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}

	_, err := account.KindFromString("unknown")
	require.Error(t, err)
	_, err = account.KindFromString("chef")
	require.Error(t, err)
}

func TestKind_OneOf(t *testing.T) {
	assert.True(t, account.KindStaff.OneOf(account.KindStaff, account.KindSuperAdmin))
	assert.False(t, account.KindCustomer.OneOf(account.KindStaff, account.KindSuperAdmin))
}

func TestNewCustomer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		c, err := account.NewCustomer(id, "Amina", "Yusuf", "amina@example.com", "$2a$10$hash", "4 Well St", "+2348012345678")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "amina@example.com", c.Email())
		assert.Equal(t, "4 Well St", c.Address())
		require.NoError(t, c.Validate())
	})

	t.Run("missing_names", func(t *testing.T) {
		_, err := account.NewCustomer(kernel.NewUUID(), "", "Yusuf", "amina@example.com", "h", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed_email", func(t *testing.T) {
		_, err := account.NewCustomer(kernel.NewUUID(), "Amina", "Yusuf", "not-an-email", "h", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var c account.Customer
		require.ErrorIs(t, c.Validate(), account.ErrCustomerIsNotConstructed)
	})
}

func TestNewDriver(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := account.NewDriver(kernel.NewUUID(), "Musa", "Bello", "+2348098765432", "$2a$10$hash", "10k litre tanker", 0.5)

		require.NoError(t, err)
		assert.True(t, d.IsActive())
		assert.InDelta(t, 0.5, d.RatePerLitre(), 0.001)
	})

	t.Run("non_positive_rate", func(t *testing.T) {
		_, err := account.NewDriver(kernel.NewUUID(), "Musa", "Bello", "+2348098765432", "h", "", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("deactivate", func(t *testing.T) {
		d, err := account.NewDriver(kernel.NewUUID(), "Musa", "Bello", "+2348098765432", "h", "", 0.5)
		require.NoError(t, err)

		d.Deactivate()
		assert.False(t, d.IsActive())
		d.Activate()
		assert.True(t, d.IsActive())
	})

	t.Run("restore_keeps_active_flag", func(t *testing.T) {
		d, err := account.RestoreDriver(kernel.NewUUID(), "Musa", "Bello", "+2348098765432", "h", "", 0.5, false)
		require.NoError(t, err)
		assert.False(t, d.IsActive())
	})
}

func TestNewStaff(t *testing.T) {
	creator := kernel.NewUUID()
	s, err := account.NewStaff(kernel.NewUUID(), "Ngozi", "Okafor", "ngozi@example.com", "$2a$10$hash", &creator)

	require.NoError(t, err)
	require.NotNil(t, s.CreatedBy())
	assert.True(t, s.CreatedBy().IsEqual(creator))

	_, err = account.NewStaff(kernel.NewUUID(), "Ngozi", "Okafor", "", "h", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSuperAdmin(t *testing.T) {
	a, err := account.NewSuperAdmin(kernel.NewUUID(), "root@example.com", "$2a$10$hash")

	require.NoError(t, err)
	assert.Equal(t, "root@example.com", a.Email())

	_, err = account.NewSuperAdmin(kernel.NewUUID(), "root@example.com", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
