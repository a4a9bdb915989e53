package transfer

import (
	"strconv"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/request"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

var requestHeader = []string{"id", "book_id", "amount", "status", "created_at"}

// ReadRequests 读取文件中的全部缺货登记
func (s *Store) ReadRequests() ([]*request.Request, error) {
	records, err := s.readRecords(requestsFile, len(requestHeader))
	if err != nil {
		return nil, err
	}

	requests := make([]*request.Request, 0, len(records))
	for _, record := range records {
		req, err := parseRequestRecord(record)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// ReadRequest 按ID读取文件中的单条缺货登记
func (s *Store) ReadRequest(id uint) (*request.Request, error) {
	requests, err := s.ReadRequests()
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, apperrors.Newf(apperrors.KindImport, "文件中不存在ID为%d的缺货登记", id)
}

// WriteRequests 覆盖写入全部缺货登记
func (s *Store) WriteRequests(requests []*request.Request) error {
	records := make([][]string, len(requests))
	for i, req := range requests {
		records[i] = requestRecord(req)
	}
	return s.writeRecords(requestsFile, requestHeader, records)
}

// WriteRequest 写入单条缺货登记：文件中已有同ID记录则替换，否则追加
func (s *Store) WriteRequest(req *request.Request) error {
	requests, err := s.ReadRequests()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range requests {
		if existing.ID == req.ID {
			requests[i] = req
			replaced = true
			break
		}
	}
	if !replaced {
		requests = append(requests, req)
	}

	return s.WriteRequests(requests)
}

func parseRequestRecord(record []string) (*request.Request, error) {
	id, err := strconv.ParseUint(record[0], 10, 64)
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "缺货登记记录ID格式错误")
	}
	bookID, err := strconv.ParseUint(record[1], 10, 64)
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "缺货登记记录图书ID格式错误")
	}
	amount, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "缺货登记记录数量格式错误")
	}
	status, ok := request.ParseStatus(record[3])
	if !ok {
		return nil, apperrors.Newf(apperrors.KindImport, "缺货登记记录状态未知: %s", record[3])
	}
	createdAt, err := time.Parse(time.RFC3339, record[4])
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "缺货登记记录创建时间格式错误")
	}

	return &request.Request{
		ID:        uint(id),
		BookID:    uint(bookID),
		Amount:    amount,
		Status:    status,
		CreatedAt: createdAt,
	}, nil
}

func requestRecord(req *request.Request) []string {
	return []string{
		strconv.FormatUint(uint64(req.ID), 10),
		strconv.FormatUint(uint64(req.BookID), 10),
		strconv.Itoa(req.Amount),
		req.Status.String(),
		req.CreatedAt.Format(time.RFC3339),
	}
}
