package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/kingofshadpow/SOS-Auto/models"
)

// statusRank orders the happy path; cancelled sits outside it.
var statusRank = map[string]int{
	models.OrderStatusPending:    0,
	models.OrderStatusConfirmed:  1,
	models.OrderStatusProcessing: 2,
	models.OrderStatusShipped:    3,
	models.OrderStatusDelivered:  4,
}

// OrderService is the in-memory order repository. Line items are
// snapshots taken at creation time and never change afterwards; only
// the status moves, forward along the happy path or out to cancelled.
type OrderService struct {
	mu     sync.RWMutex
	orders []models.Order
	byID   map[string]int
	node   *snowflake.Node
	now    func() time.Time
}

var orderService *OrderService

// InitOrderService wires the global order service used by the controllers.
func InitOrderService(seed []models.Order) (*OrderService, error) {
	svc, err := NewOrderService(seed)
	if err != nil {
		return nil, err
	}
	orderService = svc
	return svc, nil
}

// GetOrderService returns the initialized order service.
func GetOrderService() *OrderService {
	return orderService
}

func NewOrderService(seed []models.Order) (*OrderService, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}

	s := &OrderService{
		byID: make(map[string]int),
		node: node,
		now:  time.Now,
	}
	for _, o := range seed {
		s.byID[o.ID] = len(s.orders)
		s.orders = append(s.orders, o)
	}
	return s, nil
}

// CreateOrderParams carries everything Create snapshots.
type CreateOrderParams struct {
	UserID          string
	Items           []models.CartItem
	Totals          models.CartTotals
	ShippingAddress models.ShippingAddress
	PaymentMethod   string
	ShippingMethod  string
}

// Create snapshots the cart lines into an immutable order. The line
// price is the effective price at order time; later catalog changes
// never touch it. Stock is deliberately not decremented here.
func (s *OrderService) Create(params CreateOrderParams) (models.Order, error) {
	if len(params.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(params.Items))
	for i := range params.Items {
		line := &params.Items[i]
		src := &line.Product
		if line.SelectedAlternative != nil {
			src = line.SelectedAlternative
		}
		image := ""
		if len(src.Images) > 0 {
			image = src.Images[0]
		}
		items = append(items, models.OrderItem{
			ProductID: src.ID,
			Name:      src.Name,
			Brand:     src.Brand,
			Image:     image,
			Price:     src.Price,
			Quantity:  line.Quantity,
		})
	}

	createdAt := s.now()
	delivery := createdAt.AddDate(0, 0, 5)
	if params.ShippingMethod == ShippingExpress {
		delivery = createdAt.AddDate(0, 0, 2)
	}

	order := models.Order{
		ID:                s.nextOrderID(createdAt),
		UserID:            params.UserID,
		Items:             items,
		Subtotal:          params.Totals.Subtotal,
		Shipping:          params.Totals.ShippingCost,
		Total:             params.Totals.Total,
		Status:            models.OrderStatusPending,
		ShippingAddress:   params.ShippingAddress,
		PaymentMethod:     params.PaymentMethod,
		CreatedAt:         createdAt,
		EstimatedDelivery: &delivery,
	}

	s.mu.Lock()
	s.byID[order.ID] = len(s.orders)
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	return order, nil
}

// GetByID returns the order or ErrOrderNotFound; the storefront
// redirects home on a miss rather than erroring.
func (s *OrderService) GetByID(orderID string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return s.orders[idx], nil
}

// ListByUser returns the user's orders in insertion order, most recent
// last.
func (s *OrderService) ListByUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for i := range s.orders {
		if s.orders[i].UserID == userID {
			out = append(out, s.orders[i])
		}
	}
	return out
}

// ListAll returns every order in insertion order (admin view).
func (s *OrderService) ListAll() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// UpdateStatus moves an order along the state machine. The happy path
// is forward-only; cancelled is reachable from any non-terminal state;
// delivered and cancelled accept nothing further.
func (s *OrderService) UpdateStatus(orderID, newStatus string) (models.Order, error) {
	if _, known := statusRank[newStatus]; !known && newStatus != models.OrderStatusCancelled {
		return models.Order{}, ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}

	order := &s.orders[idx]
	current := order.Status

	if current == models.OrderStatusDelivered || current == models.OrderStatusCancelled {
		return models.Order{}, ErrInvalidTransition
	}

	if newStatus == models.OrderStatusCancelled {
		order.Status = models.OrderStatusCancelled
		return *order, nil
	}

	if statusRank[newStatus] <= statusRank[current] {
		return models.Order{}, ErrInvalidTransition
	}

	order.Status = newStatus
	return *order, nil
}

// nextOrderID builds a year-prefixed, snowflake-backed id. The format
// is cosmetic; the snowflake guarantees uniqueness.
func (s *OrderService) nextOrderID(t time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", t.Year(), strings.ToUpper(s.node.Generate().Base36()))
}
