package converter

import (
	"context"
)

type IConverter interface {
	// Map converts a domain entity into the API view named by out. The
	// conversion validates and defaults fields at the boundary instead
	// of trusting entity shape implicitly.
	Map(ctx context.Context, in interface{}, out interface{}) (interface{}, error)
}
