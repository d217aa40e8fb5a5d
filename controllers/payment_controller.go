package controllers

import (
	"errors"
	"io"
	"strconv"

	"github.com/KentLacno/ccl-reservation-system/pkg/paymongo"
	"github.com/KentLacno/ccl-reservation-system/pkg/resp"
	"github.com/KentLacno/ccl-reservation-system/services"
	"github.com/KentLacno/ccl-reservation-system/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct {
	Payments *services.PaymentService
	Auth     *services.AuthService
}

func NewPaymentController(payments *services.PaymentService, auth *services.AuthService) *PaymentController {
	return &PaymentController{Payments: payments, Auth: auth}
}

// POST /pay_order/:id with pay_type=order|reservation. The id is an
// order id or a reservation id depending on pay_type.
func (ctl *PaymentController) PayOrder(c *gin.Context) {
	profile, err := ctl.Auth.ProfileForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "profile not found")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var checkoutURL string
	switch c.PostForm("pay_type") {
	case "order":
		checkoutURL, err = ctl.Payments.CheckoutOrder(c.Request.Context(), profile.ID, uint(id))
	case "reservation":
		checkoutURL, err = ctl.Payments.CheckoutReservation(c.Request.Context(), profile.ID, uint(id))
	default:
		resp.BadRequest(c, "invalid payment type")
		return
	}

	if errors.Is(err, services.ErrAlreadyPaid) {
		resp.BadRequest(c, "already paid")
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"checkoutUrl": checkoutURL})
}

// POST /webhooks — gateway payment notifications. The signature is
// checked over the raw body before anything is trusted.
func (ctl *PaymentController) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.BadRequest(c, "cannot read body")
		return
	}

	if err := ctl.Payments.Gateway.VerifyWebhook(body, c.GetHeader("Paymongo-Signature")); err != nil {
		resp.BadRequest(c, "signature verification failed")
		return
	}

	event, err := paymongo.ParseEvent(body)
	if err != nil {
		resp.BadRequest(c, "malformed payload")
		return
	}

	err = ctl.Payments.HandleEvent(event)
	if errors.Is(err, services.ErrInvalidMetadata) || errors.Is(err, services.ErrInvalidPaymentType) {
		resp.BadRequest(c, "invalid metadata")
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "unknown order or reservation")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, nil)
}
