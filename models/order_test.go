package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapOrderStatus(t *testing.T) {
	status, err := MapOrderStatus("Confirmed")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusConfirmed, status)

	_, err = MapOrderStatus("teleported")
	assert.Error(t, err)
}

func TestMapPaymentStatus(t *testing.T) {
	status, err := MapPaymentStatus("PAID")
	assert.NoError(t, err)
	assert.Equal(t, PaymentStatusPaid, status)

	_, err = MapPaymentStatus("maybe")
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleManager, ParseRole("manager"))
	assert.Equal(t, RoleUser, ParseRole("user"))
	assert.Equal(t, RoleUser, ParseRole("root"))
	assert.Equal(t, RoleUser, ParseRole(""))
}
