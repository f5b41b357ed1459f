package handler

import (
	"fmt"
	"net/http"
	"strconv"

	mw "github.com/anonboard-dev/anonboard/internal/middleware"
	"github.com/anonboard-dev/anonboard/internal/ownership"
)

const ownerTokenHeader = "X-Owner-Token"

// parseIntParam parses an integer parameter from a string and returns a meaningful error
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}

// ownerProof collects whatever proof of ownership the request carries.
func ownerProof(r *http.Request) ownership.Proof {
	return ownership.Proof{
		Token: r.Header.Get(ownerTokenHeader),
		User:  mw.GetUserFromContext(r),
	}
}
