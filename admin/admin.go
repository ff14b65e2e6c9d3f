// Package admin implements the store admin panel over a profile's persisted lists: product
// overrides, the order history and the user list. Every operation needs a logged-in user.
package admin

import (
	"errors"
	"slices"
	"strings"
	"time"

	"storefront/cart"
	"storefront/models"
)

var (
	ErrLoginRequired   = errors.New("login required")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
)

// RequireLogin guards every admin operation.
func RequireLogin(current *models.User) error {
	if current == nil {
		return ErrLoginRequired
	}
	return nil
}

type Stats struct {
	Orders   int `json:"orders"`
	Products int `json:"products"`
	Users    int `json:"users"`
}

// ComputeStats counts the dashboard tiles. With no admin products the seed catalog size is shown.
func ComputeStats(current *models.User, products []models.Product, seedCount, orderCount int, users []models.User) Stats {
	n := len(products)
	if n == 0 {
		n = seedCount
	}
	return Stats{
		Orders:   orderCount,
		Products: n,
		Users:    len(Users(current, users)),
	}
}

// ProductForm creates a product when ID is zero and edits the product with that id otherwise.
type ProductForm struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Category    string `json:"category" validate:"required,oneof=iphone mac ipad watch airpods accessories"`
	Image       string `json:"image"`
	Description string `json:"description"`
	InStock     bool   `json:"in_stock"`
	IsNew       bool   `json:"is_new"`
	IsSale      bool   `json:"is_sale"`
}

// SaveProduct upserts the form into products. New products get the current Unix millis as id.
func SaveProduct(products []models.Product, f ProductForm, now time.Time) ([]models.Product, models.Product, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Image = strings.TrimSpace(f.Image)
	f.Description = strings.TrimSpace(f.Description)
	if err := cart.Validate(f); err != nil {
		return products, models.Product{}, err
	}

	id := f.ID
	if id == 0 {
		id = now.UnixMilli()
	}
	p := models.Product{
		ID:          id,
		Name:        f.Name,
		Category:    models.Category(f.Category),
		Price:       f.Price,
		Image:       f.Image,
		Description: f.Description,
		InStock:     f.InStock,
		IsNew:       f.IsNew,
		IsSale:      f.IsSale,
	}

	out := slices.Clone(products)
	if i := slices.IndexFunc(out, func(x models.Product) bool { return x.ID == id }); i >= 0 {
		out[i] = p
	} else {
		out = append(out, p)
	}
	return out, p, nil
}

func DeleteProduct(products []models.Product, id int64) ([]models.Product, error) {
	i := slices.IndexFunc(products, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return products, ErrProductNotFound
	}
	return slices.Delete(slices.Clone(products), i, i+1), nil
}

// Users lists the current user first, then the stored users with a different email.
func Users(current *models.User, users []models.User) []models.User {
	out := make([]models.User, 0, len(users)+1)
	if current != nil {
		out = append(out, *current)
	}
	for _, u := range users {
		if current != nil && u.Email == current.Email {
			continue
		}
		out = append(out, u)
	}
	return out
}

// DeleteUser drops users with email from the stored list. The current user is not touched.
func DeleteUser(users []models.User, email string) ([]models.User, error) {
	out := slices.DeleteFunc(slices.Clone(users), func(u models.User) bool { return u.Email == email })
	if len(out) == len(users) {
		return users, ErrUserNotFound
	}
	return out, nil
}
