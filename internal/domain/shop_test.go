package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShop_CanWithdraw(t *testing.T) {
	shop := Shop{Balance: 100}

	assert.True(t, shop.CanWithdraw(100))
	assert.True(t, shop.CanWithdraw(0.01))
	assert.False(t, shop.CanWithdraw(100.01))
	assert.False(t, shop.CanWithdraw(0))
	assert.False(t, shop.CanWithdraw(-5))
}

func TestWithdrawal_Settled(t *testing.T) {
	assert.False(t, Withdrawal{Status: WithdrawalPending}.Settled())
	assert.False(t, Withdrawal{Status: WithdrawalOnHold}.Settled())
	assert.True(t, Withdrawal{Status: WithdrawalApproved}.Settled())
	assert.True(t, Withdrawal{Status: WithdrawalRejected}.Settled())
}

func TestProduct_EffectivePrice(t *testing.T) {
	sale := 7.5
	assert.Equal(t, 10.0, Product{Price: 10}.EffectivePrice())
	assert.Equal(t, 7.5, Product{Price: 10, SalePrice: &sale}.EffectivePrice())

	zero := 0.0
	assert.Equal(t, 10.0, Product{Price: 10, SalePrice: &zero}.EffectivePrice())
}
