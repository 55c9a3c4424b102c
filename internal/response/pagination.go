package response

import "github.com/gofiber/fiber/v2"

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// PageOptions is the parsed ?page=&pageSize= pair plus the derived
// offset/limit handed to the stores.
type PageOptions struct {
	Page     int
	PageSize int
	Skip     int
	Take     int
}

// Paginate reads pagination query parameters, falling back to page 1 with
// 10 records per page.
func Paginate(c *fiber.Ctx) PageOptions {
	page := c.QueryInt("page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	pageSize := c.QueryInt("pageSize", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return PageOptions{
		Page:     page,
		PageSize: pageSize,
		Skip:     (page - 1) * pageSize,
		Take:     pageSize,
	}
}
