package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// ProximityUsecase runs one notification pass for a newly created broadcast request.
type ProximityUsecase interface {
	// Notify matches the request against nearby compatible candidates and sends
	// them a single multicast push. The returned PassResult is never nil.
	//
	// A request without a location or without eligible recipients ends the pass
	// with a nil error. Retrieval and dispatch failures are logged, recorded in
	// the result, and returned wrapped around ErrRetrievalFailure or
	// ErrDispatchFailure so the caller can classify them.
	Notify(ctx context.Context, request *entity.BroadcastRequest) (*entity.PassResult, error)
}
