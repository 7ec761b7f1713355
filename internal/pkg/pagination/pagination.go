package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultSize = 10
	MaxSize     = 100
)

// Query holds parsed pagination parameters. Requested reports whether the
// caller asked for paging at all; admin listings fetch the full list.
type Query struct {
	Page      int
	Size      int
	Requested bool
}

// Pagination metadata returned with paginated responses.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPage   int   `json:"total_page"`
	Size        int   `json:"size"`
	HasNextPage bool  `json:"has_next_page"`
}

// FromContext extracts and validates pagination params from the request.
func FromContext(c *gin.Context) Query {
	rawPage := c.Query("page")
	rawSize := c.Query("size")
	if rawPage == "" && rawSize == "" {
		return Query{}
	}

	page := parseIntOr(rawPage, 1)
	size := parseIntOr(rawSize, DefaultSize)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Query{Page: page, Size: size, Requested: true}
}

// Paginate applies limit/offset to a GORM query and returns the metadata.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	offset := (q.Page - 1) * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	totalPage := int((total + int64(q.Size) - 1) / int64(q.Size))
	return Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPage,
		Size:        q.Size,
		HasNextPage: q.Page < totalPage,
	}, nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
