package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Collection is the envelope for every list endpoint: the items plus a count,
// so clients never have to guess whether an empty body means "none" or
// "missing".
type Collection[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, Collection[T]{
		Items: items,
		Count: len(items),
	})
}
