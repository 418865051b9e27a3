package repo

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"
)

type Order struct {
	OrderUID          string         `db:"order_uid"`
	TrackNumber       string         `db:"track_number"`
	Entry             sql.NullString `db:"entry"`
	Locale            sql.NullString `db:"locale"`
	InternalSignature sql.NullString `db:"internal_signature"`
	CustomerID        string         `db:"customer_id"`
	DeliveryService   string         `db:"delivery_service"`
	ShardKey          sql.NullString `db:"shardkey"`
	SmID              int            `db:"sm_id"`
	DateCreated       timestamp      `db:"date_created"`
	OofShard          sql.NullString `db:"oof_shard"`
}

type Delivery struct {
	Name    string         `db:"name"`
	Phone   string         `db:"phone"`
	Zip     sql.NullString `db:"zip"`
	City    sql.NullString `db:"city"`
	Address sql.NullString `db:"address"`
	Region  sql.NullString `db:"region"`
	Email   sql.NullString `db:"email"`
}

type Payment struct {
	Transaction  string         `db:"transaction"`
	RequestID    sql.NullString `db:"request_id"`
	Currency     string         `db:"currency"`
	Provider     string         `db:"provider"`
	Amount       int            `db:"amount"`
	PaymentDT    int64          `db:"payment_dt"`
	Bank         sql.NullString `db:"bank"`
	DeliveryCost int            `db:"delivery_cost"`
	GoodsTotal   int            `db:"goods_total"`
	CustomFee    sql.NullInt32  `db:"custom_fee"`
}

type Item struct {
	Position    int            `db:"position"`
	ChrtID      int64          `db:"chrt_id"`
	TrackNumber string         `db:"track_number"`
	Price       int            `db:"price"`
	RID         string         `db:"rid"`
	Name        string         `db:"name"`
	Sale        sql.NullInt32  `db:"sale"`
	Size        sql.NullString `db:"size"`
	TotalPrice  int            `db:"total_price"`
	NmID        int64          `db:"nm_id"`
	Brand       sql.NullString `db:"brand"`
	Status      int            `db:"status"`
}

// timestamp сканирует время и из time.Time (lib/pq, pgx), и из текста (sqlite).
type timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999 -0700 MST", // time.Time.String
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		t.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into timestamp", src)
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		OrderUID:          o.OrderUID,
		TrackNumber:       o.TrackNumber,
		Entry:             nullStringToString(o.Entry),
		Locale:            nullStringToString(o.Locale),
		InternalSignature: nullStringToString(o.InternalSignature),
		CustomerID:        o.CustomerID,
		DeliveryService:   o.DeliveryService,
		ShardKey:          nullStringToString(o.ShardKey),
		SmID:              o.SmID,
		DateCreated:       o.DateCreated.Time,
		OofShard:          nullStringToString(o.OofShard),
	}
}

func DeliveryToEntity(d Delivery) entities.Delivery {
	return entities.Delivery{
		Name:    d.Name,
		Phone:   d.Phone,
		ZIP:     nullStringToString(d.Zip),
		City:    nullStringToString(d.City),
		Address: nullStringToString(d.Address),
		Region:  nullStringToString(d.Region),
		Email:   nullStringToString(d.Email),
	}
}

func PaymentToEntity(p Payment) entities.Payment {
	return entities.Payment{
		Transaction:  p.Transaction,
		RequestID:    nullStringToString(p.RequestID),
		Currency:     p.Currency,
		Provider:     p.Provider,
		Amount:       p.Amount,
		PaymentDT:    p.PaymentDT,
		Bank:         nullStringToString(p.Bank),
		DeliveryCost: p.DeliveryCost,
		GoodsTotal:   p.GoodsTotal,
		CustomFee:    nullInt32ToInt(p.CustomFee),
	}
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ChrtID:      int(i.ChrtID),
		TrackNumber: i.TrackNumber,
		Price:       i.Price,
		RID:         i.RID,
		Name:        i.Name,
		Sale:        nullInt32ToInt(i.Sale),
		Size:        nullStringToString(i.Size),
		TotalPrice:  i.TotalPrice,
		NmID:        int(i.NmID),
		Brand:       nullStringToString(i.Brand),
		Status:      i.Status,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt32ToInt(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}
