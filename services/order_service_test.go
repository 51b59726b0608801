package services

import (
	"errors"
	"testing"
	"time"

	"github.com/LXHNeko/space-takeout/entity"
	"github.com/LXHNeko/space-takeout/repository"
	"github.com/LXHNeko/space-takeout/utils"
)

func TestSubmitConvertsCartToOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)

	addr := seedAddress(t, db, 1)
	seedCartItem(t, db, 1, "Kung Pao Chicken", 1000, 2)
	seedCartItem(t, db, 1, "Mapo Tofu", 2600, 1)

	out, err := svc.Submit(1, &SubmitOrderReq{AddressBookID: addr.ID})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if out.Amount != 2*1000+2600 {
		t.Errorf("expected amount 4600, got %d", out.Amount)
	}
	if out.Number == "" {
		t.Error("expected an order number")
	}

	var order entity.Order
	if err := db.First(&order, out.ID).Error; err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if order.Status != entity.PendingPayment || order.PayStatus != entity.Unpaid {
		t.Errorf("new order in wrong state: %v/%v", order.Status, order.PayStatus)
	}
	if order.Consignee != "Li Lei" || order.Address != "ProvinceCityDistrictNo. 1" {
		t.Errorf("address snapshot wrong: %q %q", order.Consignee, order.Address)
	}

	var details int64
	db.Model(&entity.OrderDetail{}).Where("order_id = ?", order.ID).Count(&details)
	if details != 2 {
		t.Errorf("expected 2 details, got %d", details)
	}

	var cart int64
	db.Model(&entity.CartItem{}).Where("user_id = ?", 1).Count(&cart)
	if cart != 0 {
		t.Errorf("cart should be empty after submit, %d rows left", cart)
	}
}

func TestSubmitSnapshotsLineItems(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)

	addr := seedAddress(t, db, 1)
	seedCartItem(t, db, 1, "Dish Seven", 1000, 2)

	out, err := svc.Submit(1, &SubmitOrderReq{AddressBookID: addr.ID})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	var d entity.OrderDetail
	if err := db.Where("order_id = ?", out.ID).First(&d).Error; err != nil {
		t.Fatalf("detail not found: %v", err)
	}
	if d.Number != 2 || d.Price != 1000 {
		t.Errorf("snapshot wrong: qty=%d price=%d", d.Number, d.Price)
	}
	if d.DishID == nil || *d.DishID != 7 {
		t.Errorf("dish reference lost: %v", d.DishID)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)
	addr := seedAddress(t, db, 1)

	_, err := svc.Submit(1, &SubmitOrderReq{AddressBookID: addr.ID})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}

	var orders int64
	db.Model(&entity.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("no order should exist, got %d", orders)
	}
}

func TestSubmitAddressMissing(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)
	seedCartItem(t, db, 1, "Fried Rice", 2200, 1)

	_, err := svc.Submit(1, &SubmitOrderReq{AddressBookID: 999})
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}

	var cart int64
	db.Model(&entity.CartItem{}).Count(&cart)
	if cart != 1 {
		t.Errorf("cart must be untouched, got %d rows", cart)
	}
}

func seedOrder(t *testing.T, svc *OrderService, status entity.OrderStatus, payStatus entity.PayStatus) *entity.Order {
	t.Helper()
	order := entity.Order{
		Number:    utils.NewOrderNumber(),
		Status:    status,
		PayStatus: payStatus,
		Amount:    4600,
		UserID:    1,
		Consignee: "Li Lei",
		Phone:     "13800000000",
		OrderTime: time.Now(),
	}
	if err := svc.DB.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return &order
}

func TestCancelPendingPayment(t *testing.T) {
	db := newTestDB(t)
	gw := &fakeGateway{}
	svc := newOrderService(db, gw, nil)
	order := seedOrder(t, svc, entity.PendingPayment, entity.Unpaid)

	if err := svc.Cancel(order.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.Cancelled {
		t.Errorf("expected Cancelled, got %v", got.Status)
	}
	if got.CancelReason != "customer cancelled" || got.CancelTime == nil {
		t.Errorf("cancel metadata missing: %q %v", got.CancelReason, got.CancelTime)
	}
	if gw.refunds != 0 {
		t.Errorf("unpaid order must not trigger a refund, got %d", gw.refunds)
	}
}

func TestCancelRefundsCapturedPayment(t *testing.T) {
	db := newTestDB(t)
	gw := &fakeGateway{}
	svc := newOrderService(db, gw, nil)
	order := seedOrder(t, svc, entity.ToBeConfirmed, entity.Paid)

	if err := svc.Cancel(order.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if gw.refunds != 1 {
		t.Fatalf("expected exactly one refund call, got %d", gw.refunds)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.Cancelled || got.PayStatus != entity.Refund {
		t.Errorf("expected Cancelled/Refund, got %v/%v", got.Status, got.PayStatus)
	}
}

func TestCancelRefundFailureRollsBack(t *testing.T) {
	db := newTestDB(t)
	gw := &fakeGateway{refundErr: errors.New("gateway down")}
	svc := newOrderService(db, gw, nil)
	order := seedOrder(t, svc, entity.ToBeConfirmed, entity.Paid)

	err := svc.Cancel(order.ID)
	if !errors.Is(err, ErrRefundFailed) {
		t.Fatalf("expected ErrRefundFailed, got %v", err)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.ToBeConfirmed || got.PayStatus != entity.Paid {
		t.Errorf("order must be untouched, got %v/%v", got.Status, got.PayStatus)
	}
}

func TestCancelPolicyByStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)

	cases := []struct {
		status entity.OrderStatus
		want   error
	}{
		{entity.Confirmed, ErrCancelContactShop},
		{entity.DeliveryInProgress, ErrCancelContactShop},
		{entity.Completed, ErrOrderCompleted},
		{entity.Cancelled, ErrOrderCancelled},
		{entity.OrderStatus(99), ErrOrderStatus},
	}
	for _, tc := range cases {
		order := seedOrder(t, svc, tc.status, entity.Paid)
		if err := svc.Cancel(order.ID); !errors.Is(err, tc.want) {
			t.Errorf("status %v: expected %v, got %v", tc.status, tc.want, err)
		}
		var got entity.Order
		db.First(&got, order.ID)
		if got.Status != tc.status {
			t.Errorf("status %v: order must be unchanged, now %v", tc.status, got.Status)
		}
	}
}

func TestCancelMissingOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)
	if err := svc.Cancel(12345); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestPaySuccessIdempotent(t *testing.T) {
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := newOrderService(db, &fakeGateway{}, notifier)
	order := seedOrder(t, svc, entity.PendingPayment, entity.Unpaid)

	if err := svc.PaySuccess(order.Number); err != nil {
		t.Fatalf("first callback failed: %v", err)
	}

	var got entity.Order
	db.First(&got, order.ID)
	if got.Status != entity.ToBeConfirmed || got.PayStatus != entity.Paid {
		t.Fatalf("expected ToBeConfirmed/Paid, got %v/%v", got.Status, got.PayStatus)
	}
	if got.CheckoutTime == nil {
		t.Error("checkout time not stamped")
	}
	checkout := *got.CheckoutTime

	// duplicate delivery is a no-op
	if err := svc.PaySuccess(order.Number); err != nil {
		t.Fatalf("duplicate callback must not fail: %v", err)
	}
	db.First(&got, order.ID)
	if got.CheckoutTime == nil || !got.CheckoutTime.Equal(checkout) {
		t.Error("duplicate callback changed checkout time")
	}
	if notifier.calls != 1 {
		t.Errorf("expected one notification, got %d", notifier.calls)
	}
}

func TestRequestPaymentAlreadyPaid(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{alreadyPaid: true}, nil)
	order := seedOrder(t, svc, entity.PendingPayment, entity.Unpaid)

	_, err := svc.RequestPayment(1, order.Number)
	if !errors.Is(err, ErrOrderPaid) {
		t.Fatalf("expected ErrOrderPaid, got %v", err)
	}
}

func TestRequestPaymentWrongUser(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)
	order := seedOrder(t, svc, entity.PendingPayment, entity.Unpaid)

	if _, err := svc.RequestPayment(2, order.Number); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got %v", err)
	}
}

func TestReorderCopiesDetailsIntoCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)

	addr := seedAddress(t, db, 1)
	seedCartItem(t, db, 1, "Kung Pao Chicken", 1000, 2)
	seedCartItem(t, db, 1, "Fried Rice", 2200, 1)
	out, err := svc.Submit(1, &SubmitOrderReq{AddressBookID: addr.ID})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.Reorder(1, out.ID); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	items, err := svc.CartRepo.ListByUser(db, 1)
	if err != nil {
		t.Fatalf("list cart: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 cart items, got %d", len(items))
	}

	details, _ := svc.Repo.GetDetails(out.ID)
	for _, it := range items {
		for _, d := range details {
			if it.ID == d.ID && it.Name == d.Name {
				t.Errorf("cart item reused detail identity %d", it.ID)
			}
		}
	}

	// copies are independent rows
	items[0].Number = 10
	if err := db.Save(&items[0]).Error; err != nil {
		t.Fatalf("mutate copy: %v", err)
	}
	var other entity.CartItem
	db.First(&other, items[1].ID)
	if other.Number == 10 {
		t.Error("mutating one copy leaked into another")
	}
}

func TestReorderUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)
	if err := svc.Reorder(1, 777); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestPageEmptyResultIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)

	out, err := svc.Page(repository.PageQuery{Page: 1, Limit: 10, UserID: 42})
	if err != nil {
		t.Fatalf("page failed: %v", err)
	}
	if out.Total != 0 || len(out.Items) != 0 {
		t.Errorf("expected empty page, got total=%d items=%d", out.Total, len(out.Items))
	}
}

func TestPageEnrichesWithDetails(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)

	addr := seedAddress(t, db, 1)
	seedCartItem(t, db, 1, "Mapo Tofu", 2600, 1)
	if _, err := svc.Submit(1, &SubmitOrderReq{AddressBookID: addr.ID}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	out, err := svc.Page(repository.PageQuery{Page: 1, Limit: 10, UserID: 1})
	if err != nil {
		t.Fatalf("page failed: %v", err)
	}
	if out.Total != 1 || len(out.Items) != 1 {
		t.Fatalf("expected one order, got total=%d items=%d", out.Total, len(out.Items))
	}
	if len(out.Items[0].Details) != 1 {
		t.Errorf("expected detail list on page item, got %d", len(out.Items[0].Details))
	}
}

func TestStatistics(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)

	out, err := svc.Statistics()
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if out.ToBeConfirmed != 0 || out.Confirmed != 0 || out.DeliveryInProgress != 0 {
		t.Errorf("fresh database should count zero: %+v", out)
	}

	seedOrder(t, svc, entity.ToBeConfirmed, entity.Paid)
	seedOrder(t, svc, entity.ToBeConfirmed, entity.Paid)
	seedOrder(t, svc, entity.DeliveryInProgress, entity.Paid)

	out, err = svc.Statistics()
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if out.ToBeConfirmed != 2 || out.DeliveryInProgress != 1 || out.Confirmed != 0 {
		t.Errorf("wrong counts: %+v", out)
	}
}

func TestDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, &fakeGateway{}, nil)

	if _, err := svc.Detail(5); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	addr := seedAddress(t, db, 1)
	seedCartItem(t, db, 1, "Hot and Sour Soup", 1800, 3)
	out, err := svc.Submit(1, &SubmitOrderReq{AddressBookID: addr.ID})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	vo, err := svc.Detail(out.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if vo.Number != out.Number || len(vo.Details) != 1 {
		t.Errorf("detail mismatch: number=%q details=%d", vo.Number, len(vo.Details))
	}
}
