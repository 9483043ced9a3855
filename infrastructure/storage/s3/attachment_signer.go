// Package s3 issues pre-signed upload URLs against the attachment bucket.
package s3

import (
	"context"
	"time"

	"todo-backend/application/ports"
	apperrors "todo-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// AttachmentSigner implements the AttachmentSigner port using S3 pre-signed
// PUT URLs. The object key is the item identifier; no check is made that the
// identifier corresponds to an existing item.
type AttachmentSigner struct {
	presigner  *s3.PresignClient
	bucketName string
	expiration time.Duration
	logger     *zap.Logger
}

// NewAttachmentSigner creates a new AttachmentSigner
func NewAttachmentSigner(
	client *s3.Client,
	bucketName string,
	expiration time.Duration,
	logger *zap.Logger,
) ports.AttachmentSigner {
	return &AttachmentSigner{
		presigner:  s3.NewPresignClient(client),
		bucketName: bucketName,
		expiration: expiration,
		logger:     logger,
	}
}

// IssueUploadURL produces a time-bounded, write-scoped URL for the item's
// attachment object.
func (s *AttachmentSigner) IssueUploadURL(ctx context.Context, todoID string) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(todoID),
	}, s3.WithPresignExpires(s.expiration))
	if err != nil {
		s.logger.Error("Failed to presign upload URL",
			zap.Error(err),
			zap.String("todoID", todoID),
		)
		return "", apperrors.NewExternalError("s3", err)
	}

	s.logger.Debug("Issued upload URL",
		zap.String("todoID", todoID),
		zap.Duration("expiresIn", s.expiration),
	)

	return req.URL, nil
}
