package entities

import (
	"fmt"
	"math"
	"slices"
	"time"
)

type Delivery struct {
	Name    string
	Phone   string
	ZIP     string
	City    string
	Address string
	Region  string
	Email   string
}

type Payment struct {
	Transaction  string
	RequestID    string
	Currency     string
	Provider     string
	Amount       int
	PaymentDT    int64 // unix seconds
	Bank         string
	DeliveryCost int
	GoodsTotal   int
	CustomFee    int
}

type Item struct {
	ChrtID      int
	TrackNumber string
	Price       int
	RID         string
	Name        string
	Sale        int
	Size        string
	TotalPrice  int
	NmID        int
	Brand       string
	Status      int
}

type Order struct {
	OrderUID          string
	TrackNumber       string
	Entry             string
	Locale            string
	InternalSignature string
	CustomerID        string
	DeliveryService   string
	ShardKey          string
	SmID              int
	DateCreated       time.Time
	OofShard          string

	// без указателей: заказ всегда сохраняется и читается целиком
	Delivery Delivery
	Payment  Payment
	Items    []Item
}

// Validate проверяет минимальный набор полей, без которых заказ нельзя сохранить.
func (o Order) Validate() error {
	switch {
	case o.OrderUID == "":
		return fmt.Errorf("%w: order_uid is empty", ErrInvalidOrder)
	case len(o.Items) == 0:
		return fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	case o.Delivery.Name == "" || o.Delivery.Phone == "":
		return fmt.Errorf("%w: delivery name and phone are required", ErrInvalidOrder)
	case !fitsInt32(o.Payment.CustomFee):
		return fmt.Errorf("%w: custom_fee %d is out of range", ErrInvalidOrder, o.Payment.CustomFee)
	}

	for i, it := range o.Items {
		if !fitsInt32(it.Sale) {
			return fmt.Errorf("%w: items[%d].sale %d is out of range", ErrInvalidOrder, i, it.Sale)
		}
	}
	return nil
}

// колонки INTEGER в postgres четырёхбайтные
func fitsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// Clone returns a deep copy, so the caller can't mutate shared items.
func (o Order) Clone() Order {
	o.Items = slices.Clone(o.Items)
	return o
}
