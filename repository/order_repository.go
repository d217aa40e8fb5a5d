package repository

import (
	"github.com/KentLacno/ccl-reservation-system/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderForProfile scopes the lookup to the owner so one user can't
// touch another's order.
func (r *OrderRepository) GetOrderForProfile(profileID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND profile_id = ?", orderID, profileID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForProfile(profileID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Reservations", func(db *gorm.DB) *gorm.DB { return db.Order("reservations.weekday") }).
		Preload("Reservations.Selections.FoodItem").
		Where("profile_id = ?", profileID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) HasOrderForForm(profileID, formID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("profile_id = ? AND form_id = ?", profileID, formID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID uint, total int64) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("total_paid", total).Error
}

func (r *OrderRepository) MarkOrderPaid(tx *gorm.DB, orderID uint) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("paid", true).Error
}

// DeleteOrderIfUnpaid removes the order row only while paid is still
// false, so a webhook landing mid-delete can't be lost. Returns the
// number of rows removed.
func (r *OrderRepository) DeleteOrderIfUnpaid(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Where("id = ? AND paid = ?", orderID, false).Delete(&entity.Order{})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteOrderChildren(tx *gorm.DB, orderID uint) error {
	var reservationIDs []uint
	if err := tx.Model(&entity.Reservation{}).
		Where("order_id = ?", orderID).
		Pluck("id", &reservationIDs).Error; err != nil {
		return err
	}
	if len(reservationIDs) == 0 {
		return nil
	}
	if err := tx.Where("reservation_id IN ?", reservationIDs).Delete(&entity.Selection{}).Error; err != nil {
		return err
	}
	return tx.Where("order_id = ?", orderID).Delete(&entity.Reservation{}).Error
}

// ---------------- Reservations / Selections ----------------

func (r *OrderRepository) CreateReservation(tx *gorm.DB, res *entity.Reservation) error {
	return tx.Create(res).Error
}

func (r *OrderRepository) CreateSelection(tx *gorm.DB, s *entity.Selection) error {
	return tx.Create(s).Error
}

func (r *OrderRepository) GetReservation(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	if err := r.DB.Preload("Selections").First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *OrderRepository) MarkReservationPaid(tx *gorm.DB, reservationID uint) error {
	return tx.Model(&entity.Reservation{}).
		Where("id = ?", reservationID).
		Update("paid", true).Error
}

func (r *OrderRepository) CountUnpaidReservations(tx *gorm.DB, orderID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Reservation{}).
		Where("order_id = ? AND paid = ?", orderID, false).
		Count(&cnt).Error
	return cnt, err
}
