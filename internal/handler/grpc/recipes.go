// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/metrics"
	"github.com/MKhiriev/vibechef/internal/rpc"
	"github.com/MKhiriev/vibechef/internal/utils"
)

func (h *Handler) Upsert(ctx context.Context, req *rpc.UpsertRequest) (*rpc.UpsertResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, err := h.services.RecipeService.Save(ctx, userID, req.Recipe)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("upsert failed")
		return nil, statusFromError(err)
	}

	return &rpc.UpsertResponse{ID: id}, nil
}

func (h *Handler) Delete(ctx context.Context, req *rpc.DeleteRequest) (*rpc.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.services.RecipeService.Delete(ctx, userID, req.ID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("recipe_id", req.ID).Msg("delete failed")
		return nil, statusFromError(err)
	}

	return &rpc.Empty{}, nil
}

func (h *Handler) SetField(ctx context.Context, req *rpc.SetFieldRequest) (*rpc.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.services.RecipeService.SetField(ctx, userID, req.ID, req.Field, req.Value); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("recipe_id", req.ID).Msg("set field failed")
		return nil, statusFromError(err)
	}

	return &rpc.Empty{}, nil
}

// Watch streams the caller's history until the client goes away. A failed
// read or a lost change feed is sent as a frame with Error set and ends the
// call with OK.
func (h *Handler) Watch(_ *rpc.WatchRequest, stream rpc.WatchServerStream) error {
	ctx := stream.Context()
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}

	defer h.metrics.WatcherOpened(metrics.TransportGRPC)()

	for snapshot := range h.services.RecipeService.Watch(ctx, userID) {
		frame := snapshot.Frame(app.MsgWatchFailed)
		if err = stream.Send(&frame); err != nil {
			return err
		}
		h.metrics.SnapshotPushed(metrics.TransportGRPC)

		if frame.Error != "" {
			return nil
		}
	}

	if ctx.Err() != nil {
		return status.FromContextError(ctx.Err()).Err()
	}
	return nil
}

func userIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, status.Error(codes.InvalidArgument, app.MsgNoUserIDProvided)
	}
	return userID, nil
}
