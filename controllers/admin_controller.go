package controllers

import (
	"errors"
	"strconv"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/pkg/resp"
	"github.com/KentLacno/ccl-reservation-system/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	Catalog *services.CatalogService
	Reports *services.ReportService
}

func NewAdminController(catalog *services.CatalogService, reports *services.ReportService) *AdminController {
	return &AdminController{Catalog: catalog, Reports: reports}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// ---------------- Kitchen reports ----------------

// GET /admin/print_form/:id — everything the printable sheet needs.
func (ctl *AdminController) PrintForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	form, err := ctl.Catalog.FormRepo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "form not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	orders, err := ctl.Reports.OrdersForForm(form.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"weekdays":    entity.WeekdayNames(),
		"form":        form,
		"displayWeek": form.DisplayWeek(),
		"orders":      orders,
		"display":     ctl.Reports.OrdersByWeekday(orders),
	})
}

// GET /admin/check_quantities/:id — preparation counts per weekday.
func (ctl *AdminController) CheckQuantities(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	count, err := ctl.Reports.QuantityReport(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "form not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"count": count})
}

// GET /admin/check_order/:id — one order grouped by weekday.
func (ctl *AdminController) CheckOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := ctl.Reports.OrderDetails(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"weekdays": entity.WeekdayNames(),
		"display":  ctl.Reports.OrdersByWeekday([]entity.Order{*order}),
	})
}

// GET /admin/forms/:id/orders — monitor submissions against a form.
func (ctl *AdminController) ListFormOrders(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	orders, err := ctl.Reports.OrdersForForm(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// ---------------- Catalog management ----------------

// POST /admin/food_items
func (ctl *AdminController) CreateFoodItem(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Price    int64  `json:"price"`
		Image    string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Catalog.CreateFoodItem(req.Category, req.Name, req.Price, req.Image)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

// GET /admin/food_items
func (ctl *AdminController) ListFoodItems(c *gin.Context) {
	items, err := ctl.Catalog.ListFoodItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"foodItems": items})
}

// POST /admin/forms
func (ctl *AdminController) CreateForm(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
		Week     string `json:"week" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form, err := ctl.Catalog.CreateForm(req.Category, req.Week)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, form)
}

// GET /admin/forms
func (ctl *AdminController) ListForms(c *gin.Context) {
	forms, err := ctl.Catalog.ListForms()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"forms": forms})
}

// POST /admin/forms/:id/activate — deactivates the category's other
// forms in the same transaction.
func (ctl *AdminController) ActivateForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	form, err := ctl.Catalog.ActivateForm(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "form not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, form)
}

// POST /admin/forms/:id/options
func (ctl *AdminController) SetOption(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Weekday     int    `json:"weekday" binding:"required"`
		FoodItemIDs []uint `json:"foodItemIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	option, err := ctl.Catalog.SetOption(id, req.Weekday, req.FoodItemIDs)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "form or food item not found")
		return
	}
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, option)
}
