package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/cart"
	"storefront/models"
)

var airpods = models.Product{ID: 11, Name: "AirPods Pro (2-го поколения)", Category: models.CategoryAirPods, Price: 24990, InStock: true}

func validForm() cart.CheckoutForm {
	return cart.CheckoutForm{
		Name:    "Иван",
		Phone:   "+79000000000",
		Email:   "ivan@example.com",
		City:    "Казань",
		Address: "ул. Баумана, 5",
		Comment: "после 18:00",
	}
}

func TestPlace_SnapshotsCartAndClearsIt(t *testing.T) {
	c := cart.New(nil)
	c.Add(airpods)
	c.Add(airpods)
	before := cart.Total(c.Lines())

	h := NewHistory(nil)
	now := time.UnixMilli(1700000000000)
	order, err := h.Place(c, validForm(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000000), order.ID)
	assert.Equal(t, before, order.Total)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, "после 18:00", order.Customer.Comment)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Zero(t, c.Len())
	assert.Equal(t, 1, h.Len())
	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, order, last)
}

func TestPlace_InvalidFormLeavesCartAlone(t *testing.T) {
	c := cart.New(nil)
	c.Add(airpods)

	form := validForm()
	form.Phone = " "
	h := NewHistory(nil)
	_, err := h.Place(c, form, time.Now())

	var verr *cart.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"phone"}, verr.Fields)
	assert.Equal(t, 1, c.Len())
	assert.Zero(t, h.Len())
}

func TestPlace_EmptyCart(t *testing.T) {
	h := NewHistory(nil)
	_, err := h.Place(cart.New(nil), validForm(), time.Now())
	assert.ErrorIs(t, err, cart.ErrCartEmpty)
	assert.Zero(t, h.Len())
}

func TestPlace_IDsStrictlyIncrease(t *testing.T) {
	h := NewHistory([]models.Order{{ID: 5000, Status: models.StatusDelivered}})
	now := time.UnixMilli(4000)

	c := cart.New(nil)
	c.Add(airpods)
	first, err := h.Place(c, validForm(), now)
	require.NoError(t, err)
	c.Add(airpods)
	second, err := h.Place(c, validForm(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(5001), first.ID)
	assert.Equal(t, int64(5002), second.ID)
}

func TestCycle_Wraps(t *testing.T) {
	h := NewHistory([]models.Order{{ID: 1, Status: models.StatusProcessing}})
	want := []models.OrderStatus{
		models.StatusAssembled,
		models.StatusInTransit,
		models.StatusDelivered,
		models.StatusProcessing,
	}
	for _, status := range want {
		o, err := h.Cycle(1)
		require.NoError(t, err)
		assert.Equal(t, status, o.Status)
	}

	_, err := h.Cycle(2)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDelete(t *testing.T) {
	h := NewHistory([]models.Order{{ID: 1}, {ID: 2}, {ID: 3}})
	require.NoError(t, h.Delete(2))
	ids := []int64{}
	for _, o := range h.List() {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int64{1, 3}, ids)
	assert.ErrorIs(t, h.Delete(2), ErrOrderNotFound)

	_, ok := NewHistory(nil).Last()
	assert.False(t, ok)
}
