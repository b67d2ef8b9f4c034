package response

import (
	"github.com/jinzhu/copier"
)

// copyView fills a response from a read model by field name. Slices are
// shared with the view, which is built fresh per request.
func copyView[T any](src any) *T {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		panic("response: " + err.Error())
	}
	return dst
}

func copyList[T any, V any](src []*V) []*T {
	out := make([]*T, len(src))
	for i, v := range src {
		out[i] = copyView[T](v)
	}
	return out
}
