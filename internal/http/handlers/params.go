package handlers

import (
	"fmt"
	"strconv"

	"github.com/yungbote/learnify-backend/internal/platform/apierr"
)

func parseID(raw, name string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apierr.InvalidArgument("invalid_id", fmt.Errorf("invalid %s", name))
	}
	return uint(id), nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
