package transfer

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	"github.com/xiebiao/bookshop/internal/domain/order"
	"github.com/xiebiao/bookshop/internal/domain/request"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init()
	os.Exit(m.Run())
}

type fakeTx struct{}

func (fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookRepo struct {
	books  map[uint]book.Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]book.Book), nextID: 1}
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = *b
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := b
	return &copied, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) Update(_ context.Context, b *book.Book) error {
	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	r.books[b.ID] = *b
	return nil
}

func (r *fakeBookRepo) Save(_ context.Context, b *book.Book) error {
	if b.ID == 0 {
		return r.Create(nil, b)
	}
	if b.ID >= r.nextID {
		r.nextID = b.ID + 1
	}
	r.books[b.ID] = *b
	return nil
}

func (r *fakeBookRepo) List(_ context.Context, _ book.Sort) ([]*book.Book, error) {
	result := make([]*book.Book, 0, len(r.books))
	for id := uint(1); id < r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			copied := b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeBookRepo) ListStale(_ context.Context, cutoff time.Time, _ book.Sort) ([]*book.Book, error) {
	result := make([]*book.Book, 0)
	for _, b := range r.books {
		if b.IsStale(cutoff) {
			copied := b
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakeRequestRepo struct {
	requests map[uint]request.Request
	nextID   uint
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uint]request.Request), nextID: 1}
}

func (r *fakeRequestRepo) Create(_ context.Context, req *request.Request) error {
	req.ID = r.nextID
	r.nextID++
	r.requests[req.ID] = *req
	return nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id uint) (*request.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, request.ErrRequestNotFound
	}
	copied := req
	return &copied, nil
}

func (r *fakeRequestRepo) Update(_ context.Context, req *request.Request) error {
	if _, ok := r.requests[req.ID]; !ok {
		return request.ErrRequestNotFound
	}
	r.requests[req.ID] = *req
	return nil
}

func (r *fakeRequestRepo) Save(_ context.Context, req *request.Request) error {
	if req.ID == 0 {
		return r.Create(nil, req)
	}
	if req.ID >= r.nextID {
		r.nextID = req.ID + 1
	}
	r.requests[req.ID] = *req
	return nil
}

func (r *fakeRequestRepo) List(_ context.Context, _ request.Sort) ([]*request.Request, error) {
	result := make([]*request.Request, 0, len(r.requests))
	for id := uint(1); id < r.nextID; id++ {
		if req, ok := r.requests[id]; ok {
			copied := req
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeRequestRepo) ListOpen(_ context.Context, bookID uint) ([]*request.Request, error) {
	result := make([]*request.Request, 0)
	for id := uint(1); id < r.nextID; id++ {
		req, ok := r.requests[id]
		if !ok || req.Status != request.StatusOpen {
			continue
		}
		if bookID != 0 && req.BookID != bookID {
			continue
		}
		copied := req
		result = append(result, &copied)
	}
	return result, nil
}

type fakeOrderRepo struct {
	orders map[uint]order.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]order.Order), nextID: 1}
}

func cloneOrder(o order.Order) *order.Order {
	copied := o
	copied.Items = append([]order.Item(nil), o.Items...)
	if o.CompletedAt != nil {
		at := *o.CompletedAt
		copied.CompletedAt = &at
	}
	return &copied
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	o.ID = r.nextID
	r.nextID++
	r.orders[o.ID] = *cloneOrder(*o)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	r.orders[o.ID] = *cloneOrder(*o)
	return nil
}

func (r *fakeOrderRepo) Save(_ context.Context, o *order.Order) error {
	if o.ID == 0 {
		return r.Create(nil, o)
	}
	if o.ID >= r.nextID {
		r.nextID = o.ID + 1
	}
	r.orders[o.ID] = *cloneOrder(*o)
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, _ order.Sort) ([]*order.Order, error) {
	result := make([]*order.Order, 0, len(r.orders))
	for id := uint(1); id < r.nextID; id++ {
		if o, ok := r.orders[id]; ok {
			result = append(result, cloneOrder(o))
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) inWindow(o order.Order, filter order.CompletedFilter) bool {
	if o.Status != order.StatusCompleted || o.CompletedAt == nil {
		return false
	}
	if filter.Begin != nil && o.CompletedAt.Before(*filter.Begin) {
		return false
	}
	if filter.End != nil && o.CompletedAt.After(*filter.End) {
		return false
	}
	return true
}

func (r *fakeOrderRepo) ListCompleted(_ context.Context, filter order.CompletedFilter, _ order.Sort) ([]*order.Order, error) {
	result := make([]*order.Order, 0)
	for id := uint(1); id < r.nextID; id++ {
		if o, ok := r.orders[id]; ok && r.inWindow(o, filter) {
			result = append(result, cloneOrder(o))
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) CountCompleted(ctx context.Context, filter order.CompletedFilter) (int64, error) {
	matched, err := r.ListCompleted(ctx, filter, order.SortID)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (r *fakeOrderRepo) EarnedSum(ctx context.Context, filter order.CompletedFilter) (int64, error) {
	matched, err := r.ListCompleted(ctx, filter, order.SortID)
	if err != nil {
		return 0, err
	}
	var sum int64
	for _, o := range matched {
		sum += o.Total
	}
	return sum, nil
}
