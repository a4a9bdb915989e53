package transfer

import (
	"strconv"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

var bookHeader = []string{"id", "name", "author", "publication_date", "amount", "price", "last_delivered_at", "last_sale_at", "status"}

// ReadBooks 读取文件中的全部图书
func (s *Store) ReadBooks() ([]*book.Book, error) {
	records, err := s.readRecords(booksFile, len(bookHeader))
	if err != nil {
		return nil, err
	}

	books := make([]*book.Book, 0, len(records))
	for _, record := range records {
		b, err := parseBookRecord(record)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

// ReadBook 按ID读取文件中的单本图书
func (s *Store) ReadBook(id uint) (*book.Book, error) {
	books, err := s.ReadBooks()
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, apperrors.Newf(apperrors.KindImport, "文件中不存在ID为%d的图书", id)
}

// WriteBooks 覆盖写入全部图书
func (s *Store) WriteBooks(books []*book.Book) error {
	records := make([][]string, len(books))
	for i, b := range books {
		records[i] = bookRecord(b)
	}
	return s.writeRecords(booksFile, bookHeader, records)
}

// WriteBook 写入单本图书：文件中已有同ID记录则替换，否则追加
func (s *Store) WriteBook(b *book.Book) error {
	books, err := s.ReadBooks()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range books {
		if existing.ID == b.ID {
			books[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		books = append(books, b)
	}

	return s.WriteBooks(books)
}

func parseBookRecord(record []string) (*book.Book, error) {
	id, err := strconv.ParseUint(record[0], 10, 64)
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "图书记录ID格式错误")
	}
	publicationDate, err := strconv.Atoi(record[3])
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "图书记录出版年份格式错误")
	}
	amount, err := strconv.Atoi(record[4])
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "图书记录库存格式错误")
	}
	price, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "图书记录价格格式错误")
	}
	lastDeliveredAt, err := parseOptionalTime(record[6])
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "图书记录到货时间格式错误")
	}
	lastSaleAt, err := parseOptionalTime(record[7])
	if err != nil {
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "图书记录售出时间格式错误")
	}
	status, ok := book.ParseStatus(record[8])
	if !ok {
		return nil, apperrors.Newf(apperrors.KindImport, "图书记录状态未知: %s", record[8])
	}

	return &book.Book{
		ID:              uint(id),
		Name:            record[1],
		Author:          record[2],
		PublicationDate: publicationDate,
		Amount:          amount,
		Price:           price,
		LastDeliveredAt: lastDeliveredAt,
		LastSaleAt:      lastSaleAt,
		Status:          status,
	}, nil
}

func bookRecord(b *book.Book) []string {
	return []string{
		strconv.FormatUint(uint64(b.ID), 10),
		b.Name,
		b.Author,
		strconv.Itoa(b.PublicationDate),
		strconv.Itoa(b.Amount),
		strconv.FormatInt(b.Price, 10),
		formatOptionalTime(b.LastDeliveredAt),
		formatOptionalTime(b.LastSaleAt),
		b.Status.String(),
	}
}

// parseOptionalTime 解析RFC3339时间，空串表示未设置
func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
