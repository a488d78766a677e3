// file: internals/helpers/pagination.go
package helper

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const PageQueryParam = "page"

var ErrInvalidPage = errors.New("invalid page")

/* ===============================
   Paging resolver (query → page/offset/limit)
=================================*/

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging reads ?page= with a fixed page size. Missing page means 1;
// anything that is not a positive integer is ErrInvalidPage.
func ResolvePaging(c *fiber.Ctx, perPage int) (Paging, error) {
	page := 1
	if s := strings.TrimSpace(c.Query(PageQueryParam)); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Paging{}, ErrInvalidPage
		}
		page = n
	}
	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}, nil
}

// TotalPages is never below 1, so page 1 of an empty list is valid.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	n := int((total + int64(perPage) - 1) / int64(perPage))
	if n == 0 {
		n = 1
	}
	return n
}

/* ===============================
   Links
=================================*/

// PageLinks builds absolute next/previous URLs for the current request,
// keeping other query parameters. Previous of page 2 drops ?page entirely.
func PageLinks(c *fiber.Ctx, p Paging, total int64) (next, previous *string) {
	last := TotalPages(total, p.PerPage)
	if p.Page < last {
		s := pageURL(c, p.Page+1)
		next = &s
	}
	if p.Page > 1 {
		s := pageURL(c, p.Page-1)
		previous = &s
	}
	return next, previous
}

func pageURL(c *fiber.Ctx, page int) string {
	q := url.Values{}
	c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
		q.Add(string(k), string(v))
	})
	if page <= 1 {
		q.Del(PageQueryParam)
	} else {
		q.Set(PageQueryParam, strconv.Itoa(page))
	}

	u := c.BaseURL() + c.Path()
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
