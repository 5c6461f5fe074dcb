package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"tally/contexts/scoring/score-registry/application"
	"tally/contexts/scoring/score-registry/domain/identity"
	"tally/contexts/scoring/score-registry/ports"
	httptransport "tally/contexts/scoring/score-registry/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) InstantiateHandler(
	ctx context.Context,
	caller identity.Identity,
	_ httptransport.InstantiateRequest,
) (httptransport.InstantiateResponse, error) {
	result, err := h.Service.Instantiate(ctx, caller)
	if err != nil {
		return httptransport.InstantiateResponse{}, err
	}
	resp := httptransport.InstantiateResponse{Status: "success"}
	resp.Data.Owner = caller.String()
	resp.Data.InstanceID = result.Info.InstanceID
	resp.Data.InstantiatedAt = result.Info.InstantiatedAt.UTC().Format(time.RFC3339)
	return resp, nil
}

func (h Handler) UpdateScoreHandler(
	ctx context.Context,
	caller identity.Identity,
	req httptransport.UpdateScoreRequest,
) (httptransport.UpdateScoreResponse, error) {
	result, err := h.Service.UpdateScore(ctx, caller, ports.UpdateScoreInput{
		User:  identity.New(req.User),
		Score: req.Score,
	})
	if err != nil {
		return httptransport.UpdateScoreResponse{}, err
	}
	resp := httptransport.UpdateScoreResponse{
		Status:     "success",
		Attributes: make([]httptransport.AttributeDTO, 0, len(result.Attributes)),
	}
	for _, attribute := range result.Attributes {
		resp.Attributes = append(resp.Attributes, httptransport.AttributeDTO{
			Key:   attribute.Key,
			Value: attribute.Value,
		})
	}
	return resp, nil
}

func (h Handler) GetOwnerHandler(ctx context.Context) (httptransport.OwnerResponse, error) {
	owner, err := h.Service.GetOwner(ctx)
	if err != nil {
		return httptransport.OwnerResponse{}, err
	}
	resp := httptransport.OwnerResponse{Status: "success"}
	resp.Data.Owner = owner.String()
	return resp, nil
}

func (h Handler) GetScoreHandler(ctx context.Context, user string) (httptransport.ScoreResponse, error) {
	score, err := h.Service.GetScore(ctx, identity.New(user))
	if err != nil {
		return httptransport.ScoreResponse{}, err
	}
	resp := httptransport.ScoreResponse{Status: "success"}
	resp.Data.User = user
	resp.Data.Score = score
	return resp, nil
}

func (h Handler) ListScoresHandler(ctx context.Context, limit int, offset int) (httptransport.ListScoresResponse, error) {
	entries, err := h.Service.ListScores(ctx, limit, offset)
	if err != nil {
		return httptransport.ListScoresResponse{}, err
	}
	resp := httptransport.ListScoresResponse{
		Status: "success",
		Data:   make([]httptransport.ScoreEntryDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Data = append(resp.Data, httptransport.ScoreEntryDTO{
			User:  entry.User,
			Score: entry.Score,
		})
	}
	return resp, nil
}

func (h Handler) GetInfoHandler(ctx context.Context) (httptransport.InfoResponse, error) {
	info, err := h.Service.GetInfo(ctx)
	if err != nil {
		return httptransport.InfoResponse{}, err
	}
	resp := httptransport.InfoResponse{Status: "success"}
	resp.Data.Name = info.Name
	resp.Data.Version = info.Version
	resp.Data.InstanceID = info.InstanceID
	resp.Data.InstantiatedAt = info.InstantiatedAt.UTC().Format(time.RFC3339)
	return resp, nil
}
