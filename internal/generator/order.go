// Package generator builds random but internally consistent orders for demos
// and load tests.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/order-ingest/internal/entities"

	"github.com/google/uuid"
)

var (
	brands   = []string{"Vivienne Sabo", "Maybelline", "L'Oreal", "Nivea", "Garnier"}
	products = []string{"Mascaras", "Lipstick", "Shampoo", "Face Cream", "Perfume"}
	cities   = []string{"Moscow", "Kazan", "Kiryat Mozkin", "Novosibirsk", "Tver"}
	banks    = []string{"alpha", "sber", "tinkoff"}
)

// Generator is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func New(seed uint64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

// Order returns a valid order with a fresh uuid as order_uid.
func (g *Generator) Order() entities.Order {
	g.mu.Lock()
	defer g.mu.Unlock()

	uid := uuid.NewString()
	track := "WB" + strings.ToUpper(g.letters(10))
	created := g.now().UTC().Truncate(time.Second)

	items := make([]entities.Item, 1+g.rnd.IntN(3))
	goodsTotal := 0
	for i := range items {
		items[i] = g.item(track)
		goodsTotal += items[i].TotalPrice
	}

	deliveryCost := 100 * g.rnd.IntN(20)

	return entities.Order{
		OrderUID:        uid,
		TrackNumber:     track,
		Entry:           "WBIL",
		Locale:          pick(g.rnd, []string{"en", "ru"}),
		CustomerID:      "customer_" + g.letters(6),
		DeliveryService: "meest",
		ShardKey:        fmt.Sprint(g.rnd.IntN(10)),
		SmID:            g.rnd.IntN(100),
		DateCreated:     created,
		OofShard:        fmt.Sprint(1 + g.rnd.IntN(2)),
		Delivery: entities.Delivery{
			Name:    "Test Testov",
			Phone:   fmt.Sprintf("+7%010d", g.rnd.Int64N(1e10)),
			ZIP:     fmt.Sprintf("%06d", g.rnd.IntN(1e6)),
			City:    pick(g.rnd, cities),
			Address: fmt.Sprintf("Ploshad Mira %d", 1+g.rnd.IntN(99)),
			Region:  "Kraiot",
			Email:   g.letters(8) + "@example.com",
		},
		Payment: entities.Payment{
			Transaction:  uid,
			Currency:     "USD",
			Provider:     "wbpay",
			Amount:       goodsTotal + deliveryCost,
			PaymentDT:    created.Unix(),
			Bank:         pick(g.rnd, banks),
			DeliveryCost: deliveryCost,
			GoodsTotal:   goodsTotal,
		},
		Items: items,
	}
}

func (g *Generator) item(track string) entities.Item {
	price := 100 + g.rnd.IntN(2000)
	sale := g.rnd.IntN(50)

	return entities.Item{
		ChrtID:      1_000_000 + g.rnd.IntN(9_000_000),
		TrackNumber: track,
		Price:       price,
		RID:         strings.ReplaceAll(uuid.NewString(), "-", ""),
		Name:        pick(g.rnd, products),
		Sale:        sale,
		Size:        fmt.Sprint(g.rnd.IntN(5)),
		TotalPrice:  price * (100 - sale) / 100,
		NmID:        1_000_000 + g.rnd.IntN(9_000_000),
		Brand:       pick(g.rnd, brands),
		Status:      202,
	}
}

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func (g *Generator) letters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rnd.IntN(len(alphabet))]
	}
	return string(b)
}

func pick[T any](rnd *rand.Rand, xs []T) T {
	return xs[rnd.IntN(len(xs))]
}
