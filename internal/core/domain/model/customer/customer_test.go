package customer_test

import (
	"strings"
	"testing"
	"time"

	"ordermanagement/internal/core/domain/model/customer"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	email, _ := kernel.NewEmail("jane@x.com")
	now := time.Now()

	t.Run("should create customer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "Jane", email, now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Jane", c.Name())
		assert.Equal(t, "jane@x.com", c.Email().String())
		assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "  ", email, now)

		require.ErrorIs(t, err, customer.ErrNameIsRequired)
	})

	t.Run("should reject name longer than 100 characters", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), strings.Repeat("é", 101), email, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "101 is name length")
	})

	t.Run("should accept name of exactly 100 characters", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), strings.Repeat("a", 100), email, now)

		require.NoError(t, err)
	})

	t.Run("should join validation errors", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, "", kernel.Email{}, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "Email must be created")
	})
}

func TestCustomer_Validate(t *testing.T) {
	var nilCustomer *customer.Customer
	var zeroCustomer customer.Customer

	assert.Equal(t, customer.ErrCustomerIsNotConstructed, nilCustomer.Validate())
	assert.Equal(t, customer.ErrCustomerIsNotConstructed, zeroCustomer.Validate())
}

func TestCustomer_Update(t *testing.T) {
	email, _ := kernel.NewEmail("jane@x.com")
	created := time.Now().Add(-time.Hour)

	t.Run("rename and change email refresh updatedAt", func(t *testing.T) {
		c, _ := customer.NewCustomer(kernel.NewUUID(), "Jane", email, created)
		newEmail, _ := kernel.NewEmail("jane.doe@x.com")
		now := time.Now()

		require.NoError(t, c.Rename("Jane Doe", now))
		require.NoError(t, c.ChangeEmail(newEmail, now))

		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, "jane.doe@x.com", c.Email().String())
		assert.True(t, c.UpdatedAt().After(c.CreatedAt()))
	})

	t.Run("failed rename keeps previous state", func(t *testing.T) {
		c, _ := customer.NewCustomer(kernel.NewUUID(), "Jane", email, created)
		updatedAt := c.UpdatedAt()

		err := c.Rename("", time.Now())

		require.Error(t, err)
		assert.Equal(t, "Jane", c.Name())
		assert.Equal(t, updatedAt, c.UpdatedAt())
	})
}
