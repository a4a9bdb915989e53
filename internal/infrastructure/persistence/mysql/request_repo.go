package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/request"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// requestRepository 缺货登记仓储实现(MySQL)
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository 创建缺货登记仓储
func NewRequestRepository(db *gorm.DB) request.Repository {
	return &requestRepository{db: db}
}

// Create 创建缺货登记
func (r *requestRepository) Create(ctx context.Context, req *request.Request) error {
	model := toRequestModel(req)
	model.ID = 0

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建缺货登记失败")
	}

	req.ID = model.ID
	req.CreatedAt = model.CreatedAt
	return nil
}

// FindByID 根据ID查找缺货登记
func (r *requestRepository) FindByID(ctx context.Context, id uint) (*request.Request, error) {
	var model RequestModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, request.ErrRequestNotFound
		}
		return nil, apperrors.Wrap(err, "查询缺货登记失败")
	}

	return toRequestEntity(&model), nil
}

// Update 更新缺货登记（关闭登记时的状态流转）
func (r *requestRepository) Update(ctx context.Context, req *request.Request) error {
	result := dbFromContext(ctx, r.db).Model(&RequestModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"book_id": req.BookID,
			"amount":  req.Amount,
			"status":  int(req.Status),
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新缺货登记失败")
	}
	if result.RowsAffected == 0 {
		return request.ErrRequestNotFound
	}
	return nil
}

// Save 按ID覆盖写入（导入路径的upsert）
func (r *requestRepository) Save(ctx context.Context, req *request.Request) error {
	model := toRequestModel(req)
	if err := dbFromContext(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "保存缺货登记失败")
	}
	req.ID = model.ID
	return nil
}

// List 查询全部缺货登记并排序
func (r *requestRepository) List(ctx context.Context, sort request.Sort) ([]*request.Request, error) {
	var models []RequestModel
	err := dbFromContext(ctx, r.db).
		Order(requestOrderClause(sort)).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询缺货登记列表失败")
	}

	return toRequestEntities(models), nil
}

// ListOpen 查询未关闭的缺货登记
// bookID为0时不按图书过滤
func (r *requestRepository) ListOpen(ctx context.Context, bookID uint) ([]*request.Request, error) {
	query := dbFromContext(ctx, r.db).Where("status = ?", int(request.StatusOpen))
	if bookID != 0 {
		query = query.Where("book_id = ?", bookID)
	}

	var models []RequestModel
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询未关闭缺货登记失败")
	}

	return toRequestEntities(models), nil
}

// requestOrderClause 排序键 → ORDER BY子句
func requestOrderClause(sort request.Sort) string {
	switch sort {
	case request.SortBookID:
		return "book_id ASC"
	case request.SortAmount:
		return "amount ASC"
	case request.SortStatus:
		return "status ASC"
	default:
		return "id ASC"
	}
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toRequestEntity(model *RequestModel) *request.Request {
	return &request.Request{
		ID:        model.ID,
		BookID:    model.BookID,
		Amount:    model.Amount,
		Status:    request.Status(model.Status),
		CreatedAt: model.CreatedAt,
	}
}

func toRequestEntities(models []RequestModel) []*request.Request {
	requests := make([]*request.Request, len(models))
	for i := range models {
		requests[i] = toRequestEntity(&models[i])
	}
	return requests
}

func toRequestModel(req *request.Request) *RequestModel {
	return &RequestModel{
		ID:        req.ID,
		BookID:    req.BookID,
		Amount:    req.Amount,
		Status:    int(req.Status),
		CreatedAt: req.CreatedAt,
	}
}
