package features

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"storefront/cart"
	"storefront/catalog"
	"storefront/models"
	"storefront/orders"
	"storefront/tradein"
)

var placedAt = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

type storefrontTestContext struct {
	cart     *cart.Cart
	history  *orders.History
	order    models.Order
	err      error
	estimate int64
}

func (c *storefrontTestContext) reset() {
	c.cart = cart.New(nil)
	c.history = orders.NewHistory(nil)
	c.order = models.Order{}
	c.err = nil
	c.estimate = 0
}

func (c *storefrontTestContext) anEmptyCart() error {
	c.cart = cart.New(nil)
	return nil
}

func (c *storefrontTestContext) iAddProductToTheCart(id int64) error {
	p, ok := catalog.Find(catalog.Seed(), id)
	if !ok {
		return fmt.Errorf("no product %d in the seed catalog", id)
	}
	c.cart.Add(p)
	return nil
}

func (c *storefrontTestContext) iDecrementProduct(id int64) error {
	_, c.err = c.cart.Decrement(id)
	return nil
}

func (c *storefrontTestContext) iRemoveProduct(id int64) error {
	c.err = c.cart.Remove(id)
	return nil
}

func (c *storefrontTestContext) iCheckOutWith(table *godog.Table) error {
	var form cart.CheckoutForm
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		value := row.Cells[1].Value
		switch row.Cells[0].Value {
		case "name":
			form.Name = value
		case "phone":
			form.Phone = value
		case "email":
			form.Email = value
		case "city":
			form.City = value
		case "address":
			form.Address = value
		case "comment":
			form.Comment = value
		default:
			return fmt.Errorf("unknown checkout field %q", row.Cells[0].Value)
		}
	}
	c.order, c.err = c.history.Place(c.cart, form, placedAt)
	return nil
}

func (c *storefrontTestContext) theAdminCyclesTheOrderStatusTimes(times int) error {
	for i := 0; i < times; i++ {
		order, err := c.history.Cycle(c.order.ID)
		if err != nil {
			return err
		}
		c.order = order
	}
	return nil
}

func (c *storefrontTestContext) iEstimateATradeIn(deviceType string, model int, condition string) error {
	w := tradein.NewWizard()
	for _, intent := range []tradein.Intent{
		tradein.SelectType{Type: tradein.DeviceType(deviceType)},
		tradein.SelectModel{Index: model},
		tradein.SelectCondition{Condition: tradein.Condition(condition)},
	} {
		var err error
		if w, err = w.Apply(intent); err != nil {
			return err
		}
	}
	c.estimate = w.Estimate
	return nil
}

func (c *storefrontTestContext) theCartHasLines(n int) error {
	if got := c.cart.Len(); got != n {
		return fmt.Errorf("expected %d cart lines, got %d", n, got)
	}
	return nil
}

func (c *storefrontTestContext) productHasQuantity(id int64, quantity int) error {
	for _, l := range c.cart.Lines() {
		if l.ID == id {
			if l.Quantity != quantity {
				return fmt.Errorf("expected quantity %d for product %d, got %d", quantity, id, l.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("product %d is not in the cart", id)
}

func (c *storefrontTestContext) theCartTotalIs(total int64) error {
	if got := cart.Total(c.cart.Lines()); got != total {
		return fmt.Errorf("expected cart total %d, got %d", total, got)
	}
	return nil
}

func (c *storefrontTestContext) theCartIsEmpty() error {
	return c.theCartHasLines(0)
}

func (c *storefrontTestContext) theOperationFailsWith(message string) error {
	if c.err == nil {
		return errors.New("expected an error")
	}
	if !strings.Contains(c.err.Error(), message) {
		return fmt.Errorf("expected error containing %q, got %q", message, c.err.Error())
	}
	return nil
}

func (c *storefrontTestContext) anOrderIsPlacedWithTotal(total int64) error {
	if c.err != nil {
		return fmt.Errorf("expected an order but got error: %v", c.err)
	}
	if c.order.Total != total {
		return fmt.Errorf("expected order total %d, got %d", total, c.order.Total)
	}
	if c.order.ID != placedAt.UnixMilli() {
		return fmt.Errorf("expected order id %d, got %d", placedAt.UnixMilli(), c.order.ID)
	}
	return nil
}

func (c *storefrontTestContext) theOrderStatusIs(status string) error {
	if string(c.order.Status) != status {
		return fmt.Errorf("expected status %q, got %q", status, c.order.Status)
	}
	return nil
}

func (c *storefrontTestContext) checkoutIsRejectedForFields(fields string) error {
	var verr *cart.ValidationError
	if !errors.As(c.err, &verr) {
		return fmt.Errorf("expected a validation error, got %v", c.err)
	}
	if want := strings.Split(fields, ","); !slices.Equal(verr.Fields, want) {
		return fmt.Errorf("expected invalid fields %v, got %v", want, verr.Fields)
	}
	return nil
}

func (c *storefrontTestContext) theEstimateIs(estimate int64) error {
	if c.estimate != estimate {
		return fmt.Errorf("expected estimate %d, got %d", estimate, c.estimate)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	// When steps
	ctx.Step(`^I add product (\d+) to the cart$`, tc.iAddProductToTheCart)
	ctx.Step(`^I decrement product (\d+)$`, tc.iDecrementProduct)
	ctx.Step(`^I remove product (\d+)$`, tc.iRemoveProduct)
	ctx.Step(`^I check out with:$`, tc.iCheckOutWith)
	ctx.Step(`^the admin cycles the order status (\d+) times$`, tc.theAdminCyclesTheOrderStatusTimes)
	ctx.Step(`^I estimate a trade-in of (\w+) model (\d+) in (\w+) condition$`, tc.iEstimateATradeIn)

	// Then steps
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^product (\d+) has quantity (\d+)$`, tc.productHasQuantity)
	ctx.Step(`^the cart total is (\d+)$`, tc.theCartTotalIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^an order is placed with total (\d+)$`, tc.anOrderIsPlacedWithTotal)
	ctx.Step(`^the order status is "([^"]*)"$`, tc.theOrderStatusIs)
	ctx.Step(`^checkout is rejected for fields "([^"]*)"$`, tc.checkoutIsRejectedForFields)
	ctx.Step(`^the estimate is (\d+)$`, tc.theEstimateIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"storefront.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
