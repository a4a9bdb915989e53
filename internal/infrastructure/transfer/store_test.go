package transfer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/book"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func TestStore_ReadBooks(t *testing.T) {
	t.Run("文件不存在视为空", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		books, err := store.ReadBooks()
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("字段格式错误按导入错误上报", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		require.NoError(t, err)

		content := "id,name,author,publication_date,amount,price,last_delivered_at,last_sale_at,status\n" +
			"1,Go语言实战,张三,2020,不是数字,5900,,,AVAILABLE\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "books.csv"), []byte(content), 0o644))

		_, err = store.ReadBooks()
		require.Error(t, err)
		assert.Equal(t, apperrors.KindImport, apperrors.KindOf(err))
	})

	t.Run("未知状态按导入错误上报", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(dir)
		require.NoError(t, err)

		content := "id,name,author,publication_date,amount,price,last_delivered_at,last_sale_at,status\n" +
			"1,Go语言实战,张三,2020,5,5900,,,OUT_OF_PRINT\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "books.csv"), []byte(content), 0o644))

		_, err = store.ReadBooks()
		require.Error(t, err)
		assert.Equal(t, apperrors.KindImport, apperrors.KindOf(err))
	})
}

func TestStore_WriteBook(t *testing.T) {
	newBook := func(id uint, name string, amount int) *book.Book {
		return &book.Book{
			ID:     id,
			Name:   name,
			Author: "张三",
			Amount: amount,
			Price:  5900,
			Status: book.StatusAvailable,
		}
	}

	t.Run("文件中无同ID记录则追加", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.WriteBook(newBook(1, "第一本", 5)))
		require.NoError(t, store.WriteBook(newBook(2, "第二本", 3)))

		books, err := store.ReadBooks()
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "第一本", books[0].Name)
		assert.Equal(t, "第二本", books[1].Name)
	})

	t.Run("同ID记录被替换且不改变位置", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.WriteBook(newBook(1, "第一本", 5)))
		require.NoError(t, store.WriteBook(newBook(2, "第二本", 3)))
		require.NoError(t, store.WriteBook(newBook(1, "第一本修订版", 9)))

		books, err := store.ReadBooks()
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, uint(1), books[0].ID)
		assert.Equal(t, "第一本修订版", books[0].Name)
		assert.Equal(t, 9, books[0].Amount)
		assert.Equal(t, uint(2), books[1].ID)
	})
}

func TestStore_ReadBook(t *testing.T) {
	t.Run("ID不存在", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.ReadBook(42)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindImport, apperrors.KindOf(err))
	})
}
