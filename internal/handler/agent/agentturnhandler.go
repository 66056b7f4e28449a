package agent

import (
	"net/http"

	"github.com/quorumlabs/maestro/internal/httputil"
	agentlogic "github.com/quorumlabs/maestro/internal/logic/agent"
	"github.com/quorumlabs/maestro/internal/svc"
	"github.com/quorumlabs/maestro/internal/types"
)

// Run one conversational turn through the orchestration graph
func AgentTurnHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AgentTurnRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}
		if len(req.Messages) == 0 {
			httputil.BadRequest(w, "messages must not be empty")
			return
		}

		l := agentlogic.NewAgentTurnLogic(r.Context(), svcCtx)
		resp, err := l.AgentTurn(&req)
		if err != nil {
			// Classification, capability-construction, and bounded-loop
			// failures are configuration defects, not user input errors.
			httputil.InternalError(w, err.Error())
			return
		}
		httputil.OkJSON(w, resp)
	}
}
