package client

import (
	"net/url"
	"strconv"
)

// ProductListParams filters and pages a product listing. Zero-valued
// fields are omitted from the query string entirely.
type ProductListParams struct {
	Page   int
	Limit  int
	Status string
	Search string
	Sort   string
}

func (p ProductListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "status", p.Status)
	setStr(q, "search", p.Search)
	setStr(q, "sort", p.Sort)
	return q
}

// OrderListParams filters and pages an order listing. Zero-valued
// fields are omitted from the query string entirely.
type OrderListParams struct {
	Page   int
	Limit  int
	Status string
	Search string
}

func (p OrderListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "status", p.Status)
	setStr(q, "search", p.Search)
	return q
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func setStr(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
