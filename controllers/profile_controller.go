package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/catalog"
	"storefront/models"
	"storefront/notify"
	"storefront/profile"
	"storefront/session"
)

func (h *Handler) ToggleWishlist(c *gin.Context) {
	defer recordOperation(c, "wishlist_toggle")

	id, ok := paramID(c)
	if !ok {
		return
	}

	var (
		wished bool
		count  int
	)
	if err := h.do(c, func(s *session.State) error {
		if _, ok := catalog.Find(s.Catalog(), id); !ok {
			return errProductNotFound
		}
		wished = s.ToggleWishlist(id)
		count = len(s.Wishlist)
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": id, "wishlisted": wished, "count": count})
}

func (h *Handler) ToggleTheme(c *gin.Context) {
	defer recordOperation(c, "theme_toggle")

	var theme session.Theme
	if err := h.do(c, func(s *session.State) error {
		theme = s.ToggleTheme()
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *Handler) Login(c *gin.Context) {
	defer recordOperation(c, "login")

	var form profile.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.do(c, func(s *session.State) error {
		u, err := profile.Login(form)
		if err != nil {
			return err
		}
		s.User, user = &u, u
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"initial":      user.Initial(),
		"notification": h.toast(c, notify.KindSuccess, "Добро пожаловать!"),
	})
}

// Register 注册同时把用户写入管理后台的用户列表
func (h *Handler) Register(c *gin.Context) {
	defer recordOperation(c, "register")

	var form profile.RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.do(c, func(s *session.State) error {
		u, err := profile.Register(form)
		if err != nil {
			return err
		}
		s.User, user = &u, u
		s.Users = profile.Upsert(s.Users, u)
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"user":         user,
		"initial":      user.Initial(),
		"notification": h.toast(c, notify.KindSuccess, "Добро пожаловать!"),
	})
}

func (h *Handler) GetProfile(c *gin.Context) {
	defer recordOperation(c, "profile_view")

	var view profile.View
	if err := h.do(c, func(s *session.State) error {
		view = profile.NewView(s.User, s.Wishlist, s.Orders.List())
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	defer recordOperation(c, "profile_update")

	var form profile.UpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.do(c, func(s *session.State) error {
		u, err := profile.Update(s.User, form)
		if err != nil {
			return err
		}
		s.User, user = &u, u
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"notification": h.toast(c, notify.KindSuccess, "Профиль обновлен"),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	defer recordOperation(c, "logout")

	if err := h.do(c, func(s *session.State) error {
		s.User = nil
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": h.toast(c, notify.KindSuccess, "Вы вышли из аккаунта")})
}
