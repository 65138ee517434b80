package faq

// PaginationState tracks the current pagination position.
type PaginationState struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// NewPagination builds the state for totalItems, clamping page into range.
func NewPagination(totalItems, itemsPerPage, page int) PaginationState {
	if itemsPerPage <= 0 {
		itemsPerPage = 10
	}
	totalPages := totalItems / itemsPerPage
	if totalItems%itemsPerPage > 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return PaginationState{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: itemsPerPage,
	}
}

// PageItems returns the start and end indices for current page items.
func (p PaginationState) PageItems() (start, end int) {
	start = (p.CurrentPage - 1) * p.ItemsPerPage
	end = start + p.ItemsPerPage
	if end > p.TotalItems {
		end = p.TotalItems
	}
	if start > end {
		start = end
	}
	return start, end
}

// Page is one page of search results.
type Page struct {
	Items      []Entry         `json:"items"`
	Pagination PaginationState `json:"pagination"`
}

func Paginate(items []Entry, page, perPage int) Page {
	p := NewPagination(len(items), perPage, page)
	start, end := p.PageItems()
	return Page{
		Items:      items[start:end],
		Pagination: p,
	}
}
