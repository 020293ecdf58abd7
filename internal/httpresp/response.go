package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voicedoc/clinic-api/internal/pagination"
)

type Page[T any] struct {
	Result  []T   `json:"result"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasNext bool  `json:"has_next"`
}

// Result wraps data as {"result": data}.
func Result(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"result": data})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func List[T any](c *gin.Context, data []T, total int64, p pagination.Params) {
	c.JSON(http.StatusOK, Page[T]{
		Result:  data,
		Total:   total,
		Limit:   p.Limit,
		Offset:  p.Offset,
		HasNext: p.HasNext(total),
	})
}
