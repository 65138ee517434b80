package faq

import "CorpSite/internal/faq"

type Core interface {
	SearchFaq(query, category string, page, perPage int) (*faq.Page, error)
	FaqCategories() ([]string, error)
}
