package agent

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quorumlabs/maestro/internal/agent/graph"
	"github.com/quorumlabs/maestro/internal/svc"
	"github.com/quorumlabs/maestro/internal/types"
)

type AgentTurnLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	log    zerolog.Logger
}

func NewAgentTurnLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AgentTurnLogic {
	return &AgentTurnLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		log:    svcCtx.Log.With().Str("component", "agent_turn").Logger(),
	}
}

// AgentTurn runs the request through the orchestration graph and returns the
// single synthesized reply.
func (l *AgentTurnLogic) AgentTurn(req *types.AgentTurnRequest) (*types.AgentTurnResponse, error) {
	reply, err := l.svcCtx.Graph.Run(l.ctx, graph.Input{
		SystemPrompt: req.SystemPrompt,
		Turns:        req.Messages,
		AllowSearch:  req.AllowSearch,
		ImageData:    req.ImageData,
	})
	if err != nil {
		l.log.Error().Err(err).Msg("graph run failed")
		return nil, err
	}
	return &types.AgentTurnResponse{Response: reply}, nil
}
