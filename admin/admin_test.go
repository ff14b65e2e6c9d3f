package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/cart"
	"storefront/models"
)

func TestRequireLogin(t *testing.T) {
	assert.ErrorIs(t, RequireLogin(nil), ErrLoginRequired)
	assert.NoError(t, RequireLogin(&models.User{Email: "a@x"}))
}

func TestSaveProduct(t *testing.T) {
	now := time.UnixMilli(1710000000000)
	products, p, err := SaveProduct(nil, ProductForm{
		Name:     " HomePod mini ",
		Price:    12990,
		Category: "accessories",
		InStock:  true,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1710000000000), p.ID)
	assert.Equal(t, "HomePod mini", p.Name)
	require.Len(t, products, 1)

	products, p, err = SaveProduct(products, ProductForm{
		ID:       1710000000000,
		Name:     "HomePod mini",
		Price:    10990,
		Category: "accessories",
		IsSale:   true,
	}, now.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(10990), products[0].Price)
	assert.True(t, p.IsSale)

	_, _, err = SaveProduct(products, ProductForm{Name: "", Price: -1, Category: "tv"}, now)
	var verr *cart.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name", "price", "category"}, verr.Fields)
}

func TestDeleteProduct(t *testing.T) {
	products := []models.Product{{ID: 1}, {ID: 2}}
	out, err := DeleteProduct(products, 1)
	require.NoError(t, err)
	assert.Equal(t, []models.Product{{ID: 2}}, out)
	assert.Len(t, products, 2)

	_, err = DeleteProduct(out, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUsersAndStats(t *testing.T) {
	current := &models.User{Name: "me", Email: "me@x"}
	stored := []models.User{{Name: "old me", Email: "me@x"}, {Name: "bob", Email: "bob@x"}}

	list := Users(current, stored)
	require.Len(t, list, 2)
	assert.Equal(t, "me", list[0].Name)
	assert.Equal(t, "bob", list[1].Name)
	assert.Len(t, Users(nil, stored), 2)

	s := ComputeStats(current, nil, 14, 3, stored)
	assert.Equal(t, Stats{Orders: 3, Products: 14, Users: 2}, s)
	s = ComputeStats(current, []models.Product{{ID: 1}}, 14, 0, nil)
	assert.Equal(t, Stats{Orders: 0, Products: 1, Users: 1}, s)
}

func TestDeleteUser(t *testing.T) {
	users := []models.User{{Email: "a@x"}, {Email: "b@x"}}
	out, err := DeleteUser(users, "a@x")
	require.NoError(t, err)
	assert.Equal(t, []models.User{{Email: "b@x"}}, out)

	_, err = DeleteUser(out, "a@x")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
