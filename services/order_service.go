package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/LXHNeko/space-takeout/entity"
	"github.com/LXHNeko/space-takeout/pkg/payment"
	"github.com/LXHNeko/space-takeout/repository"
	"github.com/LXHNeko/space-takeout/utils"

	"gorm.io/gorm"
)

// OrderNotifier is told about orders that were paid and now wait for the
// shop to confirm them. The websocket hub implements it.
type OrderNotifier interface {
	NotifyNewOrder(orderID uint, number string)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	AddrRepo *repository.AddressRepository
	Gateway  payment.Gateway
	Notifier OrderNotifier // optional
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	addrRepo *repository.AddressRepository,
	gateway payment.Gateway,
	notifier OrderNotifier,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, AddrRepo: addrRepo, Gateway: gateway, Notifier: notifier}
}

// ----- DTOs from Controller -----

type SubmitOrderReq struct {
	AddressBookID uint   `json:"addressBookId" binding:"required"`
	PayMethod     int    `json:"payMethod"`
	Remark        string `json:"remark"`
}

type SubmitOrderRes struct {
	ID        uint      `json:"id"`
	Number    string    `json:"number"`
	OrderTime time.Time `json:"orderTime"`
	Amount    int64     `json:"amount"`
}

type OrderVO struct {
	entity.Order
	Details []entity.OrderDetail `json:"details"`
}

type OrderPageRes struct {
	Total int64     `json:"total"`
	Items []OrderVO `json:"items"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

type StatisticsRes struct {
	ToBeConfirmed      int64 `json:"toBeConfirmed"`
	Confirmed          int64 `json:"confirmed"`
	DeliveryInProgress int64 `json:"deliveryInProgress"`
}

// ----- Submit -----

// Submit turns the user's cart into a durable order. Both reads and all
// three writes run in one transaction: the order row, its detail rows
// and the cart wipe commit together or not at all.
func (s *OrderService) Submit(userID uint, req *SubmitOrderReq) (*SubmitOrderRes, error) {
	var order entity.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		addr, err := s.AddrRepo.Get(tx, req.AddressBookID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAddressNotFound
			}
			return err
		}

		items, err := s.CartRepo.ListByUser(tx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		var amount int64
		for _, it := range items {
			amount += it.Price * int64(it.Number)
		}

		order = entity.Order{
			Number:        utils.NewOrderNumber(),
			Status:        entity.PendingPayment,
			PayStatus:     entity.Unpaid,
			PayMethod:     req.PayMethod,
			Amount:        amount,
			Remark:        req.Remark,
			UserID:        userID,
			AddressBookID: addr.ID,
			Consignee:     addr.Consignee,
			Phone:         addr.Phone,
			Address:       addr.ProvinceName + addr.CityName + addr.DistrictName + addr.Detail,
			OrderTime:     time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		details := make([]entity.OrderDetail, 0, len(items))
		for _, it := range items {
			details = append(details, detailFromCartItem(it, order.ID))
		}
		if err := s.Repo.CreateDetails(tx, details); err != nil {
			return err
		}

		return s.CartRepo.DeleteByUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	return &SubmitOrderRes{ID: order.ID, Number: order.Number, OrderTime: order.OrderTime, Amount: order.Amount}, nil
}

// ----- Payment -----

// RequestPayment asks the gateway for a prepay handle. Local state stays
// untouched until the success callback arrives.
func (s *OrderService) RequestPayment(userID uint, number string) (*payment.Prepay, error) {
	order, err := s.Repo.GetByNumber(number)
	if err != nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	if order.PayStatus == entity.Paid {
		return nil, ErrOrderPaid
	}

	prepay, err := s.Gateway.CreatePrepay(order.Number, order.Amount, "space takeout order", strconv.FormatUint(uint64(userID), 10))
	if err != nil {
		if errors.Is(err, payment.ErrAlreadyPaid) {
			return nil, ErrOrderPaid
		}
		return nil, err
	}
	return prepay, nil
}

// PaySuccess is the gateway callback. Duplicate deliveries are tolerated:
// once the order is paid, further calls are no-ops.
func (s *OrderService) PaySuccess(number string) error {
	order, err := s.Repo.GetByNumber(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.PayStatus == entity.Paid {
		return nil
	}

	now := time.Now()
	err = s.Repo.Update(s.DB, order.ID, map[string]any{
		"status":        entity.ToBeConfirmed,
		"pay_status":    entity.Paid,
		"checkout_time": &now,
	})
	if err != nil {
		return err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyNewOrder(order.ID, order.Number)
	}
	return nil
}

// ----- Cancel -----

// Cancel applies the self-service cancellation policy. When the payment
// was already captured the refund runs inside the transaction, so a
// gateway failure leaves the order exactly as it was.
func (s *OrderService) Cancel(orderID uint) error {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	switch order.Status {
	case entity.Confirmed, entity.DeliveryInProgress:
		return ErrCancelContactShop
	case entity.Completed:
		return ErrOrderCompleted
	case entity.Cancelled:
		return ErrOrderCancelled
	case entity.PendingPayment, entity.ToBeConfirmed:
	default:
		return ErrOrderStatus
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		updates := map[string]any{
			"status":        entity.Cancelled,
			"cancel_time":   &now,
			"cancel_reason": "customer cancelled",
		}

		if order.Status == entity.ToBeConfirmed {
			if err := s.Gateway.Refund(order.Number, order.Number, order.Amount, order.Amount); err != nil {
				return ErrRefundFailed
			}
			updates["pay_status"] = entity.Refund
		}

		return s.Repo.Update(tx, order.ID, updates)
	})
}

// ----- Reorder -----

// Reorder copies every detail of a past order back into the cart as
// independent rows owned by the current user.
func (s *OrderService) Reorder(userID, orderID uint) error {
	details, err := s.Repo.GetDetails(orderID)
	if err != nil {
		return err
	}
	if len(details) == 0 {
		return ErrOrderNotFound
	}

	items := make([]entity.CartItem, 0, len(details))
	for _, d := range details {
		items = append(items, cartItemFromDetail(d, userID))
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.InsertBatch(tx, items)
	})
}

// ----- Queries -----

func (s *OrderService) Page(q repository.PageQuery) (*OrderPageRes, error) {
	rows, total, err := s.Repo.Page(q)
	if err != nil {
		return nil, err
	}

	items := make([]OrderVO, 0, len(rows))
	for _, o := range rows {
		details, err := s.Repo.GetDetails(o.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, OrderVO{Order: o, Details: details})
	}
	return &OrderPageRes{Total: total, Items: items, Page: q.Page, Limit: q.Limit}, nil
}

func (s *OrderService) Statistics() (*StatisticsRes, error) {
	toBeConfirmed, err := s.Repo.CountByStatus(entity.ToBeConfirmed)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.Repo.CountByStatus(entity.Confirmed)
	if err != nil {
		return nil, err
	}
	delivering, err := s.Repo.CountByStatus(entity.DeliveryInProgress)
	if err != nil {
		return nil, err
	}
	return &StatisticsRes{ToBeConfirmed: toBeConfirmed, Confirmed: confirmed, DeliveryInProgress: delivering}, nil
}

func (s *OrderService) Detail(orderID uint) (*OrderVO, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	details, err := s.Repo.GetDetails(order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderVO{Order: *order, Details: details}, nil
}

// ----- Projections -----

// Field-by-field on purpose: the copy contract between the two snapshot
// entities stays statically checkable, and identity never crosses over.

func detailFromCartItem(it entity.CartItem, orderID uint) entity.OrderDetail {
	return entity.OrderDetail{
		OrderID:   orderID,
		DishID:    it.DishID,
		SetmealID: it.SetmealID,
		Name:      it.Name,
		Image:     it.Image,
		Price:     it.Price,
		Number:    it.Number,
		Flavor:    it.Flavor,
	}
}

func cartItemFromDetail(d entity.OrderDetail, userID uint) entity.CartItem {
	return entity.CartItem{
		UserID:    userID,
		DishID:    d.DishID,
		SetmealID: d.SetmealID,
		Name:      d.Name,
		Image:     d.Image,
		Price:     d.Price,
		Number:    d.Number,
		Flavor:    d.Flavor,
	}
}
