package usecase

import (
	"context"
	"errors"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
	"moderation-srv/pkg/minio"
)

// GetFlagEvidence resolves a flag's evidence screenshots into presigned
// download URLs on the evidence bucket.
func (uc *implUseCase) GetFlagEvidence(ctx context.Context, sc model.Scope, input moderation.GetEvidenceInput) (moderation.EvidenceOutput, error) {
	flag, err := uc.flagRepo.GetFlagByID(ctx, input.FlagID)
	if err != nil {
		if errors.Is(err, repository.ErrFlagNotFound) {
			return moderation.EvidenceOutput{}, moderation.ErrFlagNotFound
		}
		uc.l.Errorf(ctx, "moderation.usecase.GetFlagEvidence: Failed to get flag %s: %v", input.FlagID, err)
		return moderation.EvidenceOutput{}, moderation.ErrEvidenceFailed
	}

	if flag.Evidence == nil || len(flag.Evidence.Screenshots) == 0 {
		return moderation.EvidenceOutput{}, moderation.ErrNoEvidence
	}

	output := moderation.EvidenceOutput{FlagID: flag.ID}
	for _, objectName := range flag.Evidence.Screenshots {
		resp, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
			BucketName: uc.cfg.EvidenceBucket,
			ObjectName: objectName,
			Expiry:     uc.cfg.EvidenceExpiry,
		})
		if err != nil {
			uc.l.Errorf(ctx, "moderation.usecase.GetFlagEvidence: Failed to presign %s for flag %s: %v", objectName, flag.ID, err)
			return moderation.EvidenceOutput{}, moderation.ErrEvidenceFailed
		}
		output.Attachments = append(output.Attachments, moderation.EvidenceAttachment{
			ObjectName: objectName,
			URL:        resp.URL,
			ExpiresAt:  resp.ExpiresAt,
		})
	}

	return output, nil
}
