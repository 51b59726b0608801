package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Number    string      `json:"number" gorm:"uniqueIndex"`
	Status    OrderStatus `json:"status"`
	PayStatus PayStatus   `json:"payStatus"`
	PayMethod int         `json:"payMethod"`
	Amount    int64       `json:"amount"`
	Remark    string      `json:"remark"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	AddressBookID uint `json:"addressBookId"`

	// address snapshot, frozen at submit time
	Consignee string `json:"consignee"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`

	OrderTime    time.Time  `json:"orderTime"`
	CheckoutTime *time.Time `json:"checkoutTime,omitempty"`
	CancelTime   *time.Time `json:"cancelTime,omitempty"`
	CancelReason string     `json:"cancelReason"`

	OrderDetails []OrderDetail `json:"-"`
}
