package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/admin"
	"storefront/cart"
	"storefront/catalog"
	"storefront/format"
	"storefront/installment"
	"storefront/models"
	"storefront/pages"
	"storefront/session"
	"storefront/tradein"
)

// pageInitializer 构造页面首屏数据；nil 表示页面没有专属模块
type pageInitializer func(s *session.State) any

func (h *Handler) pageInitializers() pages.Table[pageInitializer] {
	return pages.Table[pageInitializer]{
		pages.Home: func(s *session.State) any {
			return gin.H{"featured": h.homeProducts(s.Catalog(), catalog.CategoryAll, catalog.SortPopular)}
		},
		pages.Catalog: func(s *session.State) any {
			return catalog.NewEngine(s.Catalog()).Render()
		},
		pages.Cart:     func(s *session.State) any { return newCartView(s.Cart) },
		pages.Checkout: func(s *session.State) any { return newCartView(s.Cart) },
		pages.TradeIn: func(s *session.State) any {
			return gin.H{"device_types": tradein.DeviceTypes, "wizard": tradein.NewWizard()}
		},
		pages.Installment: func(s *session.State) any {
			return gin.H{"periods": installment.Periods, "down_payments": installment.DownPayments}
		},
		pages.Admin: func(s *session.State) any {
			if admin.RequireLogin(s.User) != nil {
				return gin.H{"login_required": true}
			}
			return gin.H{"stats": adminStats(s)}
		},
		pages.Delivery: func(*session.State) any { return nil },
		pages.Other:    func(*session.State) any { return nil },
	}
}

type cartView struct {
	Lines          []models.CartLine `json:"lines"`
	Total          int64             `json:"total"`
	TotalFormatted string            `json:"total_formatted"`
	ItemCount      int               `json:"item_count"`
	Empty          bool              `json:"empty"`
}

func newCartView(c *cart.Cart) cartView {
	lines := c.Lines()
	total := cart.Total(lines)
	return cartView{
		Lines:          lines,
		Total:          total,
		TotalFormatted: format.Price(total),
		ItemCount:      cart.ItemCount(lines),
		Empty:          len(lines) == 0,
	}
}

// GetPage 解析路径对应的页面，返回页面能力、面包屑和首屏数据
func (h *Handler) GetPage(c *gin.Context) {
	defer recordOperation(c, "page")

	page := pages.FromPath(c.Query("path"))
	var (
		data      any
		theme     session.Theme
		cartCount int
	)
	if err := h.do(c, func(s *session.State) error {
		data = h.pageInit[page](s)
		theme = s.Theme
		cartCount = cart.ItemCount(s.Cart.Lines())
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":         page,
		"capabilities": page.Capabilities(),
		"breadcrumbs":  page.Breadcrumbs(),
		"theme":        theme,
		"cart_count":   cartCount,
		"data":         data,
	})
}
