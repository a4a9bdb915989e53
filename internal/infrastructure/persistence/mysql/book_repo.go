package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 所有方法经过dbFromContext取DB，自动参与调用方事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	model.ID = 0 // 自增ID由数据库分配

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID与时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// LockByID 悲观锁查询图书
// SELECT * FROM books WHERE id = ? FOR UPDATE
// 持锁期间其他事务对该行的写入会等待当前事务COMMIT/ROLLBACK
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	result := dbFromContext(ctx, r.db).Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"name":              model.Name,
			"author":            model.Author,
			"publication_date":  model.PublicationDate,
			"amount":            model.Amount,
			"price":             model.Price,
			"last_delivered_at": model.LastDeliveredAt,
			"last_sale_at":      model.LastSaleAt,
			"status":            model.Status,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Save 按ID覆盖写入（导入路径的upsert）
// ID已存在则整行更新，否则以该ID创建
func (r *bookRepository) Save(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := dbFromContext(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "保存图书失败")
	}
	b.ID = model.ID
	return nil
}

// List 查询全部图书并排序
func (r *bookRepository) List(ctx context.Context, sort book.Sort) ([]*book.Book, error) {
	var models []BookModel
	err := dbFromContext(ctx, r.db).
		Order(bookOrderClause(sort)).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	return toBookEntities(models), nil
}

// ListStale 查询呆滞图书
// 条件：last_sale_at为NULL（从未售出）或早于cutoff
func (r *bookRepository) ListStale(ctx context.Context, cutoff time.Time, sort book.Sort) ([]*book.Book, error) {
	var models []BookModel
	err := dbFromContext(ctx, r.db).
		Where("last_sale_at IS NULL OR last_sale_at < ?", cutoff).
		Order(bookOrderClause(sort)).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询呆滞图书失败")
	}

	return toBookEntities(models), nil
}

// bookOrderClause 排序键 → ORDER BY子句
// 排序键在handler层已校验，未知键兜底按主键
func bookOrderClause(sort book.Sort) string {
	switch sort {
	case book.SortName:
		return "name ASC"
	case book.SortAuthor:
		return "author ASC"
	case book.SortPrice:
		return "price ASC"
	case book.SortPublicationDate:
		return "publication_date ASC"
	case book.SortAmount:
		return "amount ASC"
	case book.SortLastSaleDate:
		return "last_sale_at ASC"
	default:
		return "id ASC"
	}
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:              model.ID,
		Name:            model.Name,
		Author:          model.Author,
		PublicationDate: model.PublicationDate,
		Amount:          model.Amount,
		Price:           model.Price,
		LastDeliveredAt: model.LastDeliveredAt,
		LastSaleAt:      model.LastSaleAt,
		Status:          book.BookStatus(model.Status),
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:              b.ID,
		Name:            b.Name,
		Author:          b.Author,
		PublicationDate: b.PublicationDate,
		Amount:          b.Amount,
		Price:           b.Price,
		LastDeliveredAt: b.LastDeliveredAt,
		LastSaleAt:      b.LastSaleAt,
		Status:          int(b.Status),
	}
}
