package orders

import (
	"errors"
	"slices"
	"time"

	"storefront/cart"
	"storefront/models"
)

var ErrOrderNotFound = errors.New("order not found")

// History is the persisted order list of a profile, oldest first. The admin panel works on the
// same list.
type History struct {
	orders []models.Order
}

func NewHistory(orders []models.Order) *History {
	return &History{orders: slices.Clone(orders)}
}

// Place turns the cart into an order. The form is validated first; on any error neither the
// cart nor the history changes. On success the cart is cleared.
func (h *History) Place(c *cart.Cart, form cart.CheckoutForm, now time.Time) (models.Order, error) {
	form, err := form.Validate()
	if err != nil {
		return models.Order{}, err
	}
	if c.Len() == 0 {
		return models.Order{}, cart.ErrCartEmpty
	}

	lines := c.Lines()
	order := models.Order{
		ID:     h.nextID(now),
		Items:  lines,
		Total:  cart.Total(lines),
		Status: models.StatusProcessing,
		Customer: models.Recipient{
			Name:    form.Name,
			Phone:   form.Phone,
			Email:   form.Email,
			City:    form.City,
			Address: form.Address,
			Comment: form.Comment,
		},
		CreatedAt: now.UTC(),
	}
	h.orders = append(h.orders, order)
	c.Clear()
	return order, nil
}

// nextID derives the id from the clock but keeps ids strictly increasing.
func (h *History) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, o := range h.orders {
		if o.ID >= id {
			id = o.ID + 1
		}
	}
	return id
}

func (h *History) Last() (models.Order, bool) {
	if len(h.orders) == 0 {
		return models.Order{}, false
	}
	return h.orders[len(h.orders)-1], true
}

// List returns a copy of the history, never nil.
func (h *History) List() []models.Order { return append([]models.Order{}, h.orders...) }

func (h *History) Len() int { return len(h.orders) }

func (h *History) index(id int64) int {
	return slices.IndexFunc(h.orders, func(o models.Order) bool { return o.ID == id })
}

// Cycle advances the status of order id one step, wrapping after delivery.
func (h *History) Cycle(id int64) (models.Order, error) {
	i := h.index(id)
	if i < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	h.orders[i].Status = h.orders[i].Status.Next()
	return h.orders[i], nil
}

func (h *History) Delete(id int64) error {
	i := h.index(id)
	if i < 0 {
		return ErrOrderNotFound
	}
	h.orders = slices.Delete(h.orders, i, i+1)
	return nil
}
