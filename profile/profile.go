// Package profile handles the singleton user of a browser profile: login, registration,
// settings and logout. Passwords are required on the forms but never stored.
package profile

import (
	"errors"
	"slices"
	"strings"

	"storefront/cart"
	"storefront/models"
)

var ErrNotLoggedIn = errors.New("not logged in")

type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Login builds the user for a login submit. The name is the local part of the email.
func Login(f LoginForm) (models.User, error) {
	f.Email = strings.TrimSpace(f.Email)
	f.Password = strings.TrimSpace(f.Password)
	if err := cart.Validate(f); err != nil {
		return models.User{}, err
	}
	name, _, _ := strings.Cut(f.Email, "@")
	return models.User{Name: name, Email: f.Email}, nil
}

func Register(f RegisterForm) (models.User, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Password = strings.TrimSpace(f.Password)
	if err := cart.Validate(f); err != nil {
		return models.User{}, err
	}
	return models.User{Name: f.Name, Email: f.Email}, nil
}

// Update applies the settings form on top of the current user.
func Update(current *models.User, f UpdateForm) (models.User, error) {
	if current == nil {
		return models.User{}, ErrNotLoggedIn
	}
	f = UpdateForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Address: strings.TrimSpace(f.Address),
	}
	if err := cart.Validate(f); err != nil {
		return models.User{}, err
	}
	return models.User{Name: f.Name, Email: f.Email, Phone: f.Phone, Address: f.Address}, nil
}

// Upsert replaces the entry with u's email or appends u.
func Upsert(users []models.User, u models.User) []models.User {
	out := slices.Clone(users)
	if i := slices.IndexFunc(out, func(x models.User) bool { return x.Email == u.Email }); i >= 0 {
		out[i] = u
		return out
	}
	return append(out, u)
}

// LastOrder is the "№<id> на сумму <total>" line of the profile page.
type LastOrder struct {
	ID    int64 `json:"id"`
	Total int64 `json:"total"`
}

type View struct {
	User          *models.User   `json:"user"`
	Initial       string         `json:"initial,omitempty"`
	WishlistCount int            `json:"wishlist_count"`
	LastOrder     *LastOrder     `json:"last_order"`
	Orders        []models.Order `json:"orders"`
}

// NewView assembles the profile page. A nil user still gets the order history.
func NewView(u *models.User, wishlist []int64, history []models.Order) View {
	v := View{User: u, WishlistCount: len(wishlist), Orders: history}
	if v.Orders == nil {
		v.Orders = []models.Order{}
	}
	if u != nil {
		v.Initial = u.Initial()
	}
	if n := len(history); n > 0 {
		v.LastOrder = &LastOrder{ID: history[n-1].ID, Total: history[n-1].Total}
	}
	return v
}
