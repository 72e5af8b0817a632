package test

import (
	"context"
	"time"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	ByEmail map[string]*model.Customer
	ByID    map[int64]*model.Customer
	Next    int64
	Err     error
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{
		ByEmail: make(map[string]*model.Customer),
		ByID:    make(map[int64]*model.Customer),
		Next:    1,
	}
}

// Create registers a customer unless the email is taken or the stub carries
// an explicit error.
func (s *CustomerRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.Customer)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Customer)
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	customer := &model.Customer{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.ByEmail[email] = customer
	s.ByID[customer.ID] = customer
	return customer, nil
}

// GetByEmail fetches a customer by email or returns not found.
func (s *CustomerRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.ByEmail[email]; ok {
		return customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a customer by identifier or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if customer, ok := s.ByID[id]; ok {
		return customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored customer.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Customer, 0, len(s.ByEmail))
	for _, customer := range s.ByEmail {
		result = append(result, *customer)
	}
	return result, nil
}

// OrderRepositoryStub allows tests to customize behaviour and records writes.
type OrderRepositoryStub struct {
	CreateFn         func(context.Context, model.Order) (*model.Order, error)
	GetFn            func(context.Context, int64) (*model.Order, error)
	ListByCustomerFn func(context.Context, string) ([]model.Order, error)
	ListAllFn        func(context.Context) ([]model.Order, error)
	SetStatusFn      func(context.Context, int64, model.OrderStatus) (*model.Order, error)

	Created      []model.Order
	Orders       []model.Order
	StatusCalls  []StatusCall
	NextID       int64
}

// StatusCall records one SetStatus invocation.
type StatusCall struct {
	ID     int64
	Status model.OrderStatus
}

// Create tracks the order and returns it with an assigned id.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	order.ID = s.NextID
	s.NextID++
	order.Status = model.OrderStatusPending
	order.CreatedAt = time.Now()
	s.Created = append(s.Created, order)
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// Get returns a matching stored order or not found.
func (s *OrderRepositoryStub) Get(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCustomer filters stored orders by email.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, email string) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, email)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.CustomerEmail == email {
			result = append(result, o)
		}
	}
	return result, nil
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return append([]model.Order(nil), s.Orders...), nil
}

// SetStatus records the call and overwrites the stored status.
func (s *OrderRepositoryStub) SetStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	s.StatusCalls = append(s.StatusCalls, StatusCall{ID: id, Status: status})
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = status
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// NotificationRepositoryStub stores notifications in-memory, most recent first.
type NotificationRepositoryStub struct {
	CreateFn      func(context.Context, model.Notification) (*model.Notification, error)
	ListFn        func(context.Context, string, int) ([]model.Notification, error)
	AcknowledgeFn func(context.Context, int64) error

	Notifications []model.Notification
	Acked         []int64
	NextID        int64
}

// Create prepends the notification so defaults mimic created-at descending order.
func (s *NotificationRepositoryStub) Create(ctx context.Context, n model.Notification) (*model.Notification, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, n)
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	n.ID = s.NextID
	s.NextID++
	n.IsRead = false
	n.CreatedAt = time.Now()
	s.Notifications = append([]model.Notification{n}, s.Notifications...)
	return &n, nil
}

// ListByCustomer filters stored notifications and applies the limit.
func (s *NotificationRepositoryStub) ListByCustomer(ctx context.Context, email string, limit int) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, email, limit)
	}
	var result []model.Notification
	for _, n := range s.Notifications {
		if n.CustomerEmail == email {
			result = append(result, n)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// Acknowledge flips the stored read flag and records the call.
func (s *NotificationRepositoryStub) Acknowledge(ctx context.Context, id int64) error {
	s.Acked = append(s.Acked, id)
	if s.AcknowledgeFn != nil {
		return s.AcknowledgeFn(ctx, id)
	}
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			s.Notifications[i].IsRead = true
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ContactRepositoryStub records contact messages in-memory.
type ContactRepositoryStub struct {
	Messages []model.ContactMessage
	Err      error
	NextID   int64
}

// Create appends the message.
func (s *ContactRepositoryStub) Create(ctx context.Context, m model.ContactMessage) (*model.ContactMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	m.ID = s.NextID
	s.NextID++
	m.CreatedAt = time.Now()
	s.Messages = append(s.Messages, m)
	return &m, nil
}

// List returns stored messages.
func (s *ContactRepositoryStub) List(ctx context.Context) ([]model.ContactMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.ContactMessage(nil), s.Messages...), nil
}

// ProductRepositoryStub serves a fixed catalog.
type ProductRepositoryStub struct {
	Products []model.Product
	Err      error
}

// ListAvailable filters the fixture to available entries.
func (s *ProductRepositoryStub) ListAvailable(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if p.Available {
			result = append(result, p)
		}
	}
	return result, nil
}
