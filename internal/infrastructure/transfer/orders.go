package transfer

import (
	"strconv"
	"strings"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

var orderHeader = []string{"id", "status", "total", "client_name", "ordered_at", "completed_at", "items"}

// ReadOrders 读取文件中的全部订单
func (s *Store) ReadOrders() ([]*order.Order, error) {
	records, err := s.readRecords(ordersFile, len(orderHeader))
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		o, err := parseOrderRecord(record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// ReadOrder 按ID读取文件中的单个订单
func (s *Store) ReadOrder(id uint) (*order.Order, error) {
	orders, err := s.ReadOrders()
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, apperrors.Newf(apperrors.KindImport, "文件中不存在ID为%d的订单", id)
}

// WriteOrders 覆盖写入全部订单
func (s *Store) WriteOrders(orders []*order.Order) error {
	records := make([][]string, len(orders))
	for i, o := range orders {
		records[i] = orderRecord(o)
	}
	return s.writeRecords(ordersFile, orderHeader, records)
}

// WriteOrder 写入单个订单：文件中已有同ID记录则替换，否则追加
func (s *Store) WriteOrder(o *order.Order) error {
	orders, err := s.ReadOrders()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range orders {
		if existing.ID == o.ID {
			orders[i] = o
			replaced = true
			break
		}
	}
	if !replaced {
		orders = append(orders, o)
	}

	return s.WriteOrders(orders)
}

func parseOrderRecord(record []string) (*order.Order, error) {
	id, err := strconv.ParseUint(record[0], 10, 64)
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "订单记录ID格式错误")
	}
	status, ok := order.ParseStatus(record[1])
	if !ok {
		return nil, apperrors.Newf(apperrors.KindImport, "订单记录状态未知: %s", record[1])
	}
	total, err := strconv.ParseInt(record[2], 10, 64)
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "订单记录金额格式错误")
	}
	orderedAt, err := time.Parse(time.RFC3339, record[4])
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "订单记录下单时间格式错误")
	}
	completedAt, err := parseOptionalTime(record[5])
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "订单记录完成时间格式错误")
	}
	items, err := parseOrderItems(record[6])
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:          uint(id),
		Status:      status,
		Total:       total,
		ClientName:  record[3],
		Items:       items,
		OrderedAt:   orderedAt,
		CompletedAt: completedAt,
	}, nil
}

func orderRecord(o *order.Order) []string {
	return []string{
		strconv.FormatUint(uint64(o.ID), 10),
		o.Status.String(),
		strconv.FormatInt(o.Total, 10),
		o.ClientName,
		o.OrderedAt.Format(time.RFC3339),
		formatOptionalTime(o.CompletedAt),
		formatOrderItems(o.Items),
	}
}

// parseOrderItems 解析订单明细编码
// 单行内编码为 bookID:数量:价格，多条明细用分号分隔
func parseOrderItems(value string) ([]order.Item, error) {
	if value == "" {
		return nil, nil
	}

	parts := strings.Split(value, ";")
	items := make([]order.Item, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, apperrors.Newf(apperrors.KindImport, "订单明细格式错误: %s", part)
		}
		bookID, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, apperrors.WrapKind(apperrors.KindImport, err, "订单明细图书ID格式错误")
		}
		quantity, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, apperrors.WrapKind(apperrors.KindImport, err, "订单明细数量格式错误")
		}
		price, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, apperrors.WrapKind(apperrors.KindImport, err, "订单明细价格格式错误")
		}
		items = append(items, order.Item{
			BookID:   uint(bookID),
			Quantity: quantity,
			Price:    price,
		})
	}
	return items, nil
}

func formatOrderItems(items []order.Item) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.FormatUint(uint64(item.BookID), 10) +
			":" + strconv.Itoa(item.Quantity) +
			":" + strconv.FormatInt(item.Price, 10)
	}
	return strings.Join(parts, ";")
}
