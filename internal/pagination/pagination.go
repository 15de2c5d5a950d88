// Package pagination нарезает упорядоченные выборки на страницы фиксированного размера.
package pagination

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// Page — метаданные страницы, достаточные для вывода "страница N из M"
// и ссылок вперёд/назад.
type Page struct {
	Current int
	PerPage int
	Total   int64
	Pages   int
}

// NewPage нормализует page и perPage (значения ≤0 становятся 1) и считает
// количество страниц.
func NewPage(page, perPage int, total int64) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return Page{Current: page, PerPage: perPage, Total: total, Pages: pages}
}

func (p Page) Offset() int   { return (p.Current - 1) * p.PerPage }
func (p Page) HasPrev() bool { return p.Current > 1 }
func (p Page) HasNext() bool { return p.Current < p.Pages }
func (p Page) PrevNum() int  { return p.Current - 1 }
func (p Page) NextNum() int  { return p.Current + 1 }

// Result — элементы одной страницы вместе с метаданными.
type Result[T any] struct {
	Page
	Items []T
}

// Paginate считает строки модели T и загружает страницу page. Порядок и
// предзагрузка связей задаются через scopes; для подсчёта они не применяются.
// Страница за пределами последней даёт пустой список без ошибки.
func Paginate[T any](db *gorm.DB, page, perPage int, scopes ...func(*gorm.DB) *gorm.DB) (*Result[T], error) {
	var total int64
	if err := db.Session(&gorm.Session{}).Model(new(T)).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}

	meta := NewPage(page, perPage, total)
	items := make([]T, 0, meta.PerPage)
	err := db.Session(&gorm.Session{}).
		Scopes(scopes...).
		Offset(meta.Offset()).
		Limit(meta.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("load page %d: %w", meta.Current, err)
	}
	return &Result[T]{Page: meta, Items: items}, nil
}

// ParsePage разбирает параметр запроса ?page=. Пустое, нечисловое или
// неположительное значение даёт 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
