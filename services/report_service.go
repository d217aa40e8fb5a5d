package services

import (
	"github.com/KentLacno/ccl-reservation-system/entity"
	"github.com/KentLacno/ccl-reservation-system/repository"
)

// ReportService builds the kitchen preparation views.
type ReportService struct {
	Repo     *repository.ReportRepository
	FormRepo *repository.FormRepository
}

func NewReportService(repo *repository.ReportRepository, formRepo *repository.FormRepository) *ReportService {
	return &ReportService{Repo: repo, FormRepo: formRepo}
}

// QuantityReport counts ordered quantities per weekday and food item,
// plus a "total" bucket. Items offered on a weekday always appear,
// zeroed, even with no orders.
func (s *ReportService) QuantityReport(formID uint) (map[string]map[string]int64, error) {
	form, err := s.FormRepo.GetWithOptions(formID)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.OrdersForForm(form.ID)
	if err != nil {
		return nil, err
	}

	count := make(map[string]map[string]int64, 6)
	for _, name := range entity.WeekdayNames() {
		count[name] = map[string]int64{}
	}
	count["total"] = map[string]int64{}

	for _, option := range form.Options {
		weekdayName := entity.WeekdayName(option.Weekday)
		for _, item := range option.FoodItems {
			count[weekdayName][item.Name] = 0
			if _, ok := count["total"][item.Name]; !ok {
				count["total"][item.Name] = 0
			}
		}
	}

	for _, order := range orders {
		for _, reservation := range order.Reservations {
			weekdayName := entity.WeekdayName(reservation.Weekday)
			for _, selection := range reservation.Selections {
				count[weekdayName][selection.FoodItem.Name] += int64(selection.Quantity)
				count["total"][selection.FoodItem.Name] += int64(selection.Quantity)
			}
		}
	}

	return count, nil
}

// OrdersByWeekday groups reservations under weekday names for the
// printable kitchen listing.
func (s *ReportService) OrdersByWeekday(orders []entity.Order) map[string][]entity.Reservation {
	display := make(map[string][]entity.Reservation, 5)
	for _, name := range entity.WeekdayNames() {
		display[name] = []entity.Reservation{}
	}

	for _, order := range orders {
		for _, reservation := range order.Reservations {
			name := entity.WeekdayName(reservation.Weekday)
			display[name] = append(display[name], reservation)
		}
	}

	return display
}

func (s *ReportService) OrdersForForm(formID uint) ([]entity.Order, error) {
	return s.Repo.OrdersForForm(formID)
}

func (s *ReportService) OrderDetails(orderID uint) (*entity.Order, error) {
	return s.Repo.OrderWithDetails(orderID)
}
