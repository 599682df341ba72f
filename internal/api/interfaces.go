package api

import (
	"context"

	"github.com/qaspilab/qaspilab/internal/model"
	"github.com/qaspilab/qaspilab/internal/service"
)

// IdeaSubmitter accepts idea submissions.
type IdeaSubmitter interface {
	Submit(ctx context.Context, req model.SubmissionRequest, meta service.SubmitMeta) (*model.SubmissionResponse, error)
}
