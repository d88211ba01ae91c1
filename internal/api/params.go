package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/earthmesh/cubedsphere/internal/direction"
)

// parseDescriptorParams reads comma-separated dims/origin/extent/shape
// query parameters into the values quantity.NewDescriptor expects.
func parseDescriptorParams(q url.Values) (dims []direction.DimLabel, origin, extent, shape []int, err error) {
	dimTokens := strings.Split(q.Get("dims"), ",")
	dims = make([]direction.DimLabel, len(dimTokens))
	for i, tok := range dimTokens {
		dims[i], err = direction.ParseDimLabel(tok)
		if err != nil {
			return nil, nil, nil, nil, err
		}
	}

	origin, err = parseIntList(q.Get("origin"))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	extent, err = parseIntList(q.Get("extent"))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	shape, err = parseIntList(q.Get("shape"))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return dims, origin, extent, shape, nil
}

func parseIntList(s string) ([]int, error) {
	tokens := strings.Split(s, ",")
	values := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("parsing integer list %q: %w", s, err)
		}
		values[i] = v
	}
	return values, nil
}
