package menu

// Paginator відображає 1-базовий номер сторінки на вікно впорядкованої
// послідовності. Номер за межами діапазону не панікує - він
// притискається до останньої сторінки (політика: clamp, не порожня
// сторінка).
type Paginator struct {
	total   int
	perPage int
	page    int
}

func NewPaginator(total, page, perPage int) Paginator {
	if perPage < 1 {
		perPage = 1
	}
	pages := (total + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}
	return Paginator{total: total, perPage: perPage, page: page}
}

// Page - фактичний (вже притиснутий) номер сторінки.
func (p Paginator) Page() int {
	return p.page
}

func (p Paginator) Pages() int {
	return (p.total + p.perPage - 1) / p.perPage
}

// Bounds - межі зрізу поточної сторінки; для порожньої послідовності
// обидві нульові.
func (p Paginator) Bounds() (int, int) {
	lo := (p.page - 1) * p.perPage
	if lo > p.total {
		lo = p.total
	}
	hi := lo + p.perPage
	if hi > p.total {
		hi = p.total
	}
	return lo, hi
}

func (p Paginator) HasPrevious() bool {
	return p.page > 1
}

func (p Paginator) HasNext() bool {
	return p.page < p.Pages()
}
