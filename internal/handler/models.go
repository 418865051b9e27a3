package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
)

// Order представляет заказ
type Order struct {
	OrderUID          string    `json:"order_uid" validate:"required"`
	TrackNumber       string    `json:"track_number"`
	Entry             string    `json:"entry"`
	Delivery          Delivery  `json:"delivery"`
	Payment           Payment   `json:"payment"`
	Items             []Item    `json:"items" validate:"required,dive"`
	Locale            string    `json:"locale"`
	InternalSignature string    `json:"internal_signature"`
	CustomerID        string    `json:"customer_id"`
	DeliveryService   string    `json:"delivery_service"`
	ShardKey          string    `json:"shardkey"`
	SmID              int       `json:"sm_id" validate:"gte=0,lte=2147483647"`
	DateCreated       time.Time `json:"date_created"`
	OofShard          string    `json:"oof_shard"`
}

// Delivery информация о доставке
type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	ZIP     string `json:"zip"`
	City    string `json:"city"`
	Address string `json:"address"`
	Region  string `json:"region"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// Payment информация об оплате
type Payment struct {
	Transaction  string `json:"transaction"`
	RequestID    string `json:"request_id"`
	Currency     string `json:"currency"`
	Provider     string `json:"provider"`
	Amount       int    `json:"amount" validate:"gte=0,lte=2147483647"`
	PaymentDT    int64  `json:"payment_dt" validate:"gte=0"`
	Bank         string `json:"bank"`
	DeliveryCost int    `json:"delivery_cost" validate:"gte=0,lte=2147483647"`
	GoodsTotal   int    `json:"goods_total" validate:"gte=0,lte=2147483647"`
	CustomFee    int    `json:"custom_fee" validate:"gte=0,lte=2147483647"`
}

// Item товар в заказе
type Item struct {
	ChrtID      int    `json:"chrt_id"`
	TrackNumber string `json:"track_number"`
	Price       int    `json:"price" validate:"gte=0,lte=2147483647"`
	RID         string `json:"rid"`
	Name        string `json:"name"`
	Sale        int    `json:"sale" validate:"gte=0,lte=100"`
	Size        string `json:"size"`
	TotalPrice  int    `json:"total_price" validate:"gte=0,lte=2147483647"`
	NmID        int    `json:"nm_id"`
	Brand       string `json:"brand"`
	Status      int    `json:"status" validate:"gte=-2147483648,lte=2147483647"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, Item(it))
	}

	return Order{
		OrderUID:          o.OrderUID,
		TrackNumber:       o.TrackNumber,
		Entry:             o.Entry,
		Locale:            o.Locale,
		InternalSignature: o.InternalSignature,
		CustomerID:        o.CustomerID,
		DeliveryService:   o.DeliveryService,
		ShardKey:          o.ShardKey,
		SmID:              o.SmID,
		DateCreated:       o.DateCreated,
		OofShard:          o.OofShard,
		Delivery:          Delivery(o.Delivery),
		Payment:           Payment(o.Payment),
		Items:             items,
	}
}

func OrderJSONToEntity(o Order) entities.Order {
	items := make([]entities.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, entities.Item(it))
	}

	return entities.Order{
		OrderUID:          o.OrderUID,
		TrackNumber:       o.TrackNumber,
		Entry:             o.Entry,
		Locale:            o.Locale,
		InternalSignature: o.InternalSignature,
		CustomerID:        o.CustomerID,
		DeliveryService:   o.DeliveryService,
		ShardKey:          o.ShardKey,
		SmID:              o.SmID,
		DateCreated:       o.DateCreated.UTC().Truncate(time.Microsecond),
		OofShard:          o.OofShard,
		Delivery:          entities.Delivery(o.Delivery),
		Payment:           entities.Payment(o.Payment),
		Items:             items,
	}
}

var ErrMissingField = errors.New("missing required field")

// Ключи, которые обязаны присутствовать в сообщении. Пустое значение
// допустимо (internal_signature обычно ""), отсутствие ключа нет.
var (
	orderKeys = []string{
		"order_uid", "track_number", "entry", "delivery", "payment", "items",
		"locale", "internal_signature", "customer_id", "delivery_service",
		"shardkey", "sm_id", "date_created", "oof_shard",
	}
	deliveryKeys = []string{"name", "phone", "zip", "city", "address", "region", "email"}
	paymentKeys  = []string{
		"transaction", "request_id", "currency", "provider", "amount",
		"payment_dt", "bank", "delivery_cost", "goods_total", "custom_fee",
	}
	itemKeys = []string{
		"chrt_id", "track_number", "price", "rid", "name", "sale",
		"size", "total_price", "nm_id", "brand", "status",
	}
)

// DecodeOrder parses an order and fails with ErrMissingField when any key of
// the message format is absent, including keys of delivery, payment and every item.
// Values are checked separately by struct validation.
func DecodeOrder(data []byte) (Order, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Order{}, err
	}
	if err := requireKeys("", fields, orderKeys); err != nil {
		return Order{}, err
	}
	if err := requireObjectKeys("delivery", fields["delivery"], deliveryKeys); err != nil {
		return Order{}, err
	}
	if err := requireObjectKeys("payment", fields["payment"], paymentKeys); err != nil {
		return Order{}, err
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(fields["items"], &items); err != nil {
		return Order{}, err
	}
	for i, item := range items {
		if err := requireKeys(fmt.Sprintf("items[%d].", i), item, itemKeys); err != nil {
			return Order{}, err
		}
	}

	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

func requireObjectKeys(name string, raw json.RawMessage, keys []string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return requireKeys(name+".", fields, keys)
}

func requireKeys(prefix string, fields map[string]json.RawMessage, keys []string) error {
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("%w: %s%s", ErrMissingField, prefix, key)
		}
	}
	return nil
}
