package pagination

import "strings"

const (
	DefaultTake = 10
	MaxTake     = 50
	MaxPage     = 1_000_000
)

// PageOptions is bound from the query string of every listing endpoint.
type PageOptions struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	Take          int    `form:"take" binding:"omitempty,min=1,max=50"`
	Order         string `form:"order" binding:"omitempty,oneof=ASC DESC asc desc"`
	OrderByColumn string `form:"orderByColumn"`
}

// Normalize applies defaults and resolves the sort column against allowed.
// The first allowed column is the fallback; allowed must not be empty.
func (p *PageOptions) Normalize(allowed ...string) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Take <= 0 {
		p.Take = DefaultTake
	}
	if p.Take > MaxTake {
		p.Take = MaxTake
	}
	p.Order = strings.ToUpper(p.Order)
	if p.Order != "ASC" && p.Order != "DESC" {
		p.Order = "DESC"
	}
	col := p.OrderByColumn
	p.OrderByColumn = allowed[0]
	for _, a := range allowed {
		if strings.EqualFold(a, col) {
			p.OrderByColumn = a
			break
		}
	}
}

func (p PageOptions) Skip() int { return (p.Page - 1) * p.Take }

// Meta describes the returned page.
type Meta struct {
	Page            int  `json:"page"`
	Take            int  `json:"take"`
	ItemCount       int  `json:"itemCount"`
	PageCount       int  `json:"pageCount"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

func NewMeta(opts PageOptions, itemCount int) Meta {
	pageCount := 0
	if opts.Take > 0 {
		pageCount = (itemCount + opts.Take - 1) / opts.Take
	}
	return Meta{
		Page:            opts.Page,
		Take:            opts.Take,
		ItemCount:       itemCount,
		PageCount:       pageCount,
		HasPreviousPage: opts.Page > 1,
		HasNextPage:     opts.Page < pageCount,
	}
}

// Page is the listing response body.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

func NewPage[T any](data []T, opts PageOptions, itemCount int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Meta: NewMeta(opts, itemCount)}
}
