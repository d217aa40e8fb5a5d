package controllers

import (
	"errors"
	"strconv"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/pkg/resp"
	"github.com/KentLacno/ccl-reservation-system/services"
	"github.com/KentLacno/ccl-reservation-system/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Orders  *services.OrderService
	Catalog *services.CatalogService
	Auth    *services.AuthService
}

func NewOrderController(orders *services.OrderService, catalog *services.CatalogService, auth *services.AuthService) *OrderController {
	return &OrderController{Orders: orders, Catalog: catalog, Auth: auth}
}

func (ctl *OrderController) currentProfile(c *gin.Context) (*entity.Profile, bool) {
	profile, err := ctl.Auth.ProfileForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "profile not found")
		return nil, false
	}
	return profile, true
}

// GET / — the reservation landing payload: profile, active forms with
// their weekday options, past orders, and submitted flags.
func (ctl *OrderController) Index(c *gin.Context) {
	profile, ok := ctl.currentProfile(c)
	if !ok {
		return
	}

	orders, err := ctl.Orders.ListForProfile(profile.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := gin.H{"profile": profile, "orders": orders}

	lunchForm, err := ctl.Catalog.ActiveForm(entity.CategoryLunch)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if lunchForm != nil {
		submitted, err := ctl.Orders.HasSubmitted(profile.ID, lunchForm.ID)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		out["activeLunchForm"] = lunchForm
		out["submittedLunch"] = submitted
	}

	snacksForm, err := ctl.Catalog.ActiveForm(entity.CategorySnacks)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if snacksForm != nil {
		submitted, err := ctl.Orders.HasSubmitted(profile.ID, snacksForm.ID)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		out["activeSnacksForm"] = snacksForm
		out["submittedSnacks"] = submitted
	}

	resp.OK(c, out)
}

// POST / — submit a weekly order. The body is a form post with a
// "form" field (lunch_form | snacks_form) and dynamic
// "{foodItemId}-{weekday}-quantity" fields.
func (ctl *OrderController) Submit(c *gin.Context) {
	profile, ok := ctl.currentProfile(c)
	if !ok {
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		resp.BadRequest(c, "malformed form body")
		return
	}
	values := make(map[string]string, len(c.Request.PostForm))
	for key, vals := range c.Request.PostForm {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}

	var activeForm *entity.Form
	var err error
	switch values["form"] {
	case "lunch_form":
		activeForm, err = ctl.Catalog.ActiveForm(entity.CategoryLunch)
	case "snacks_form":
		activeForm, err = ctl.Catalog.ActiveForm(entity.CategorySnacks)
	default:
		resp.BadRequest(c, "invalid form submission")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if activeForm == nil {
		resp.BadRequest(c, "no active form for this category")
		return
	}

	order, err := ctl.Orders.Submit(profile, activeForm, values)
	if errors.Is(err, services.ErrFoodItemNotFound) {
		resp.NotFound(c, "food item not found")
		return
	}
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, order)
}

// POST /delete_order/:id
func (ctl *OrderController) Delete(c *gin.Context) {
	profile, ok := ctl.currentProfile(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	err = ctl.Orders.Delete(profile.ID, uint(id))
	if errors.Is(err, services.ErrOrderPaid) {
		resp.BadRequest(c, "cannot delete a paid order")
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"deleted": true})
}
