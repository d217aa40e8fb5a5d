package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/pkg/paymongo"
	"github.com/KentLacno/ccl-reservation-system/repository"
	"gorm.io/gorm"
)

var (
	ErrAlreadyPaid        = errors.New("already paid")
	ErrInvalidPaymentType = errors.New("invalid payment type")
	ErrInvalidMetadata    = errors.New("invalid webhook metadata")
)

// PaymentService opens checkout sessions and applies the gateway's
// payment-paid webhooks back onto orders and reservations.
type PaymentService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	Gateway *paymongo.Client
}

func NewPaymentService(db *gorm.DB, repo *repository.OrderRepository, gateway *paymongo.Client) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, Gateway: gateway}
}

func (s *PaymentService) CheckoutOrder(ctx context.Context, profileID, orderID uint) (string, error) {
	order, err := s.Repo.GetOrderForProfile(profileID, orderID)
	if err != nil {
		return "", err
	}
	if order.Paid {
		return "", ErrAlreadyPaid
	}

	return s.Gateway.CreateCheckoutSession(ctx, order.TotalPaid, paymongo.Metadata{
		Type: "order",
		ID:   strconv.FormatUint(uint64(order.ID), 10),
	})
}

func (s *PaymentService) CheckoutReservation(ctx context.Context, profileID, reservationID uint) (string, error) {
	reservation, err := s.Repo.GetReservation(reservationID)
	if err != nil {
		return "", err
	}
	// ownership runs through the owning order
	if _, err := s.Repo.GetOrderForProfile(profileID, reservation.OrderID); err != nil {
		return "", err
	}
	if reservation.Paid {
		return "", ErrAlreadyPaid
	}

	return s.Gateway.CreateCheckoutSession(ctx, reservation.TotalAmount(), paymongo.Metadata{
		Type: "reservation",
		ID:   strconv.FormatUint(uint64(reservation.ID), 10),
	})
}

// HandleEvent applies a verified webhook event. Marking paid twice is
// a no-op, so gateway re-deliveries are safe without de-duplication.
func (s *PaymentService) HandleEvent(event *paymongo.Event) error {
	if event.Type() != paymongo.EventPaymentPaid {
		return nil
	}

	metadata := event.Metadata()
	id, err := strconv.ParseUint(metadata.ID, 10, 32)
	if err != nil {
		return ErrInvalidMetadata
	}

	switch metadata.Type {
	case "order":
		return s.markOrderPaid(uint(id))
	case "reservation":
		return s.markReservationPaid(uint(id))
	default:
		return ErrInvalidPaymentType
	}
}

func (s *PaymentService) markOrderPaid(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order entity.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		return s.Repo.MarkOrderPaid(tx, order.ID)
	})
}

// markReservationPaid flips the reservation and cascades the order's
// paid flag once every sibling reservation is paid.
func (s *PaymentService) markReservationPaid(reservationID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation entity.Reservation
		if err := tx.First(&reservation, reservationID).Error; err != nil {
			return err
		}
		if err := s.Repo.MarkReservationPaid(tx, reservation.ID); err != nil {
			return err
		}

		unpaid, err := s.Repo.CountUnpaidReservations(tx, reservation.OrderID)
		if err != nil {
			return err
		}
		if unpaid == 0 {
			return s.Repo.MarkOrderPaid(tx, reservation.OrderID)
		}
		return nil
	})
}
