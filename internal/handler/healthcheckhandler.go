package handler

import (
	"net/http"
	"time"

	"github.com/quorumlabs/maestro/internal/httputil"
	"github.com/quorumlabs/maestro/internal/svc"
	"github.com/quorumlabs/maestro/internal/types"
)

const version = "1.0.0"

func HealthCheckHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.OkJSON(w, &types.HealthResponse{
			Status:    "ok",
			Version:   version,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
