package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/repository"
	"gorm.io/gorm"
)

var (
	ErrFoodItemNotFound = errors.New("food item not found")
	ErrOrderPaid        = errors.New("cannot delete a paid order")
)

// OrderService turns raw submission values into persisted orders.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	FoodRepo *repository.FoodRepository
	Reward   *RewardService
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, foodRepo *repository.FoodRepository, reward *RewardService) *OrderService {
	return &OrderService{DB: db, Repo: repo, FoodRepo: foodRepo, Reward: reward}
}

type itemQuantity struct {
	foodItemID uint
	quantity   int
}

// groupByWeekday parses submission keys of the form
// "{foodItemID}-{weekday}-quantity" and buckets the non-zero entries
// by weekday 1..5.
func groupByWeekday(values map[string]string) (map[int][]itemQuantity, error) {
	grouped := make(map[int][]itemQuantity)

	for key, value := range values {
		if !strings.Contains(key, "quantity") {
			continue
		}
		parts := strings.Split(key, "-")
		if len(parts) < 3 {
			return nil, fmt.Errorf("malformed quantity key %q", key)
		}
		foodItemID, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed food item id in key %q", key)
		}
		weekday, err := strconv.Atoi(parts[1])
		if err != nil || weekday < entity.Monday || weekday > entity.Friday {
			return nil, fmt.Errorf("malformed weekday in key %q", key)
		}
		quantity, err := strconv.Atoi(value)
		if err != nil || quantity < 0 {
			return nil, fmt.Errorf("malformed quantity %q for key %q", value, key)
		}
		if quantity == 0 {
			continue
		}
		grouped[weekday] = append(grouped[weekday], itemQuantity{
			foodItemID: uint(foodItemID),
			quantity:   quantity,
		})
	}

	return grouped, nil
}

// Submit creates the order, its sparse per-weekday reservations and
// line-item selections in one transaction, then credits reward coins.
// Any missing food item aborts the whole submission.
func (s *OrderService) Submit(profile *entity.Profile, form *entity.Form, values map[string]string) (*entity.Order, error) {
	grouped, err := groupByWeekday(values)
	if err != nil {
		return nil, err
	}

	weekdays := make([]int, 0, len(grouped))
	for wd := range grouped {
		weekdays = append(weekdays, wd)
	}
	sort.Ints(weekdays)

	grade := profile.Department
	if grade == "" {
		grade = "Unknown"
	}

	var out *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			FormID:    form.ID,
			ProfileID: profile.ID,
			Name:      profile.Name,
			Grade:     grade,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		var total int64
		for _, weekday := range weekdays {
			reservation := entity.Reservation{OrderID: order.ID, Weekday: weekday}
			if err := s.Repo.CreateReservation(tx, &reservation); err != nil {
				return err
			}

			for _, iq := range grouped[weekday] {
				item, err := s.FoodRepo.Get(tx, iq.foodItemID)
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrFoodItemNotFound
				}
				if err != nil {
					return err
				}

				selection := entity.Selection{
					ReservationID: reservation.ID,
					FoodItemID:    item.ID,
					Quantity:      iq.quantity,
					UnitPrice:     item.Price,
					Total:         item.Price * int64(iq.quantity),
				}
				if err := s.Repo.CreateSelection(tx, &selection); err != nil {
					return err
				}
				total += selection.Total
				reservation.Selections = append(reservation.Selections, selection)
			}
			order.Reservations = append(order.Reservations, reservation)
		}

		if err := s.Repo.UpdateTotal(tx, order.ID, total); err != nil {
			return err
		}
		order.TotalPaid = total

		if _, err := s.Reward.Award(tx, profile.ID, total); err != nil {
			return err
		}

		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an unpaid order with its reservations and selections.
// The paid flag is re-checked inside the transaction so a payment
// confirmation landing mid-delete keeps the order.
func (s *OrderService) Delete(profileID, orderID uint) error {
	if _, err := s.Repo.GetOrderForProfile(profileID, orderID); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		removed, err := s.Repo.DeleteOrderIfUnpaid(tx, orderID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return ErrOrderPaid
		}
		return s.Repo.DeleteOrderChildren(tx, orderID)
	})
}

func (s *OrderService) ListForProfile(profileID uint) ([]entity.Order, error) {
	return s.Repo.ListForProfile(profileID)
}

func (s *OrderService) HasSubmitted(profileID, formID uint) (bool, error) {
	return s.Repo.HasOrderForForm(profileID, formID)
}
