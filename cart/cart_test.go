package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

var (
	iphone = models.Product{ID: 1, Name: "iPhone 15 Pro", Category: models.CategoryIPhone, Price: 119990, InStock: true}
	pencil = models.Product{ID: 13, Name: "Apple Pencil (USB-C)", Category: models.CategoryAccessories, Price: 7990, InStock: true}
)

func TestAdd_SameProductTwiceMakesOneLine(t *testing.T) {
	c := New(nil)
	c.Add(iphone)
	line := c.Add(iphone)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, int64(239980), Total(c.Lines()))
}

func TestIncrementDecrement(t *testing.T) {
	c := New(nil)
	c.Add(pencil)

	line, err := c.Increment(pencil.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	for i := 0; i < 5; i++ {
		line, err = c.Decrement(pencil.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, line.Quantity, "decrement floors at one")
	assert.Equal(t, 1, c.Len())

	_, err = c.Increment(99)
	assert.ErrorIs(t, err, ErrLineNotFound)
	_, err = c.Decrement(99)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemove_IgnoresQuantity(t *testing.T) {
	c := New(nil)
	c.Add(iphone)
	c.Add(iphone)
	c.Add(pencil)

	require.NoError(t, c.Remove(iphone.ID))
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, pencil.ID, lines[0].ID)

	assert.ErrorIs(t, c.Remove(iphone.ID), ErrLineNotFound)
}

func TestNew_NormalisesPersistedLines(t *testing.T) {
	c := New([]models.CartLine{
		{Product: iphone, Quantity: 0},
		{Product: pencil, Quantity: 2},
		{Product: iphone, Quantity: 3},
	})
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].Quantity)
}

func TestTotalAndItemCount(t *testing.T) {
	lines := []models.CartLine{
		{Product: iphone, Quantity: 2},
		{Product: pencil, Quantity: 3},
	}
	assert.Equal(t, int64(2*119990+3*7990), Total(lines))
	assert.Equal(t, 5, ItemCount(lines))
	assert.Zero(t, Total(nil))
	assert.Zero(t, ItemCount(nil))
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New(nil)
	c.Add(iphone)
	lines := c.Lines()
	lines[0].Quantity = 42
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestDrawer(t *testing.T) {
	tests := []struct {
		from DrawerState
		ev   DrawerEvent
		want DrawerState
	}{
		{DrawerClosed, DrawerTrigger, DrawerOpen},
		{DrawerClosed, DrawerClose, DrawerClosed},
		{DrawerClosed, DrawerOverlay, DrawerClosed},
		{DrawerClosed, DrawerNavigate, DrawerClosed},
		{DrawerOpen, DrawerClose, DrawerClosed},
		{DrawerOpen, DrawerOverlay, DrawerClosed},
		{DrawerOpen, DrawerNavigate, DrawerClosed},
		{DrawerOpen, DrawerTrigger, DrawerOpen},
		{DrawerState("bogus"), DrawerTrigger, DrawerClosed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.Next(tt.ev), "%s + %s", tt.from, tt.ev)
	}
}

func TestCheckoutForm_Validate(t *testing.T) {
	form := CheckoutForm{
		Name:    "  Анна ",
		Phone:   "+7 900 000-00-00",
		Email:   "anna@example.com",
		City:    "Москва",
		Address: "Тверская, 1",
	}
	got, err := form.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Анна", got.Name)

	form.City = "   "
	form.Address = ""
	_, err = form.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"city", "address"}, verr.Fields)
	assert.Contains(t, verr.Error(), "city")
}
