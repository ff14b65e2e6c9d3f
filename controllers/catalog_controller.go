package controllers

import (
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/catalog"
	"storefront/models"
	"storefront/session"
)

// catalogIntents 把查询参数翻译成目录意图，未给出的参数保持默认
func catalogIntents(c *gin.Context) ([]catalog.Intent, bool) {
	var intents []catalog.Intent
	if v, ok := c.GetQuery("category"); ok {
		intents = append(intents, catalog.SelectCategory{Category: v})
	}
	if v, ok := c.GetQuery("q"); ok {
		intents = append(intents, catalog.SetSearch{Text: strings.TrimSpace(v)})
	}
	for _, bound := range []string{"min", "max"} {
		v, ok := c.GetQuery(bound)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price " + bound})
			return nil, false
		}
		if bound == "min" {
			intents = append(intents, catalog.SetPriceMin{Value: n})
		} else {
			intents = append(intents, catalog.SetPriceMax{Value: n})
		}
	}
	if v := c.Query("facets"); v != "" {
		for _, f := range strings.Split(v, ",") {
			intents = append(intents, catalog.SetFacet{Facet: catalog.Facet(strings.TrimSpace(f)), On: true})
		}
	}
	if v, ok := c.GetQuery("sort"); ok {
		intents = append(intents, catalog.SetSort{Key: catalog.SortKey(v)})
	}
	if v, ok := c.GetQuery("view"); ok {
		intents = append(intents, catalog.SetView{View: catalog.View(v)})
	}
	return intents, true
}

func (h *Handler) GetCatalog(c *gin.Context) {
	defer recordOperation(c, "catalog")

	intents, ok := catalogIntents(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := h.do(c, func(s *session.State) error {
		products = s.Catalog()
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}

	engine := catalog.NewEngine(products)
	engine.Dispatch(intents...)
	c.JSON(http.StatusOK, engine.Render())
}

func (h *Handler) homeProducts(products []models.Product, category string, sort catalog.SortKey) []models.Product {
	if category == "" {
		category = catalog.CategoryAll
	}
	filtered := catalog.HomeFilter(products, category)
	var out []models.Product
	h.withRand(func(rng *rand.Rand) {
		out = catalog.HomeSort(filtered, sort, rng)
	})
	return out
}

func (h *Handler) GetHome(c *gin.Context) {
	defer recordOperation(c, "home")

	var products []models.Product
	if err := h.do(c, func(s *session.State) error {
		products = s.Catalog()
		return nil
	}); err != nil {
		h.fail(c, err)
		return
	}

	out := h.homeProducts(products, c.Query("category"), catalog.SortKey(c.Query("sort")))
	c.JSON(http.StatusOK, gin.H{"products": out, "count": len(out)})
}
