package request

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
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
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
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

func mustBook(t *testing.T, repo *fakeBookRepo, name string, amount int, price int64) *book.Book {
	t.Helper()
	b, err := book.NewBook(name, "测试作者", 2020, amount, price)
	if err != nil {
		t.Fatalf("创建测试图书失败: %v", err)
	}
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("保存测试图书失败: %v", err)
	}
	return b
}
