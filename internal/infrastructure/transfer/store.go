// Package transfer 实现图书、订单、缺货登记的CSV文件导入导出。
// 每类实体对应数据目录下的一个固定文件，首行为表头。
package transfer

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

const (
	booksFile    = "books.csv"
	ordersFile   = "orders.csv"
	requestsFile = "requests.csv"
)

// Store 文件交换存储
type Store struct {
	dir string
}

// NewStore 创建文件交换存储，确保数据目录存在
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.WrapKind(apperrors.KindExport, err, "创建数据目录失败")
	}
	return &Store{dir: dir}, nil
}

// readRecords 读取CSV文件的全部数据行（跳过表头）
// 文件不存在视为空
func (s *Store) readRecords(name string, wantFields int) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, apperrors.WrapKind(apperrors.KindImport, err, "打开数据文件失败")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = wantFields

	var records [][]string
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.WrapKind(apperrors.KindImport, err, "数据文件格式错误")
		}
		if first {
			// 表头行
			first = false
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// writeRecords 覆盖写入CSV文件（表头 + 数据行）
func (s *Store) writeRecords(name string, header []string, records [][]string) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return apperrors.WrapKind(apperrors.KindExport, err, "创建数据文件失败")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return apperrors.WrapKind(apperrors.KindExport, err, "写入数据文件失败")
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return apperrors.WrapKind(apperrors.KindExport, err, "写入数据文件失败")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.WrapKind(apperrors.KindExport, err, "写入数据文件失败")
	}
	return nil
}
