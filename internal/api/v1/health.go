package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/kyra-labs/internship-dashboard/internal/utils"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthHandler(p pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		ok := p.Ping(ctx) == nil
		data := map[string]interface{}{
			"sessions": ok,
			"time":     time.Now(),
		}
		if !ok {
			utils.WriteJSONResponse(w, http.StatusServiceUnavailable, false, "session registry unreachable", data, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, true, "ok", data, nil)
	}
}
