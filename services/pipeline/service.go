// Package pipeline sequences one contact-form submission through
// validation, challenge verification, operator notification, the local
// ledger append and the remote mirror sync.
package pipeline

import (
	"context"

	"github.com/tupelotree/contact-backend/models"
	"github.com/tupelotree/contact-backend/services"
	"go.uber.org/zap"
)

// State names one position of the per-request state machine
type State string

const (
	StateStart        State = "start"
	StateValidated    State = "validated"
	StateChallengeOK  State = "challenge_ok"
	StateMailed       State = "mailed"
	StateLocalWritten State = "local_written"
	StateMirrored     State = "mirrored"
	StateDone         State = "done"
)

// Stage interfaces, one per pipeline step

// ChallengeVerifier checks the submitted challenge token
type ChallengeVerifier interface {
	Verify(ctx context.Context, token string) error
}

// Notifier emails the operator about a submission
type Notifier interface {
	Send(ctx context.Context, sub models.Submission) error
}

// LedgerWriter appends a record to the local ledger
type LedgerWriter interface {
	Append(ctx context.Context, rec models.LedgerRecord) error
}

// MirrorSyncer appends a record to the remote ledger mirror
type MirrorSyncer interface {
	Sync(ctx context.Context, rec models.LedgerRecord) error
}

// Service orchestrates the submission pipeline. Each stage runs only if the
// previous one succeeded; the first failure is terminal for the request and
// nothing after it executes. No stage is retried.
type Service struct {
	verifier ChallengeVerifier
	notifier Notifier
	ledger   LedgerWriter
	mirror   MirrorSyncer
	logger   *zap.Logger
}

// New creates the pipeline service over its stage implementations
func New(verifier ChallengeVerifier, notifier Notifier, ledger LedgerWriter, mirror MirrorSyncer, logger *zap.Logger) *Service {
	return &Service{
		verifier: verifier,
		notifier: notifier,
		ledger:   ledger,
		mirror:   mirror,
		logger:   logger,
	}
}

// Process runs one submission through the full pipeline and returns the
// validated Submission on success.
//
// Stage order matches the deployed system, including its known defect: a
// mail-relay failure aborts the pipeline before the local ledger write, so
// a transient relay outage loses the record. Preserved, not endorsed.
func (s *Service) Process(ctx context.Context, form models.ContactForm) (*models.Submission, error) {
	state := StateStart

	sub, fieldErrs := form.Validate()
	if len(fieldErrs) > 0 {
		s.logger.Info("submission failed validation",
			zap.String("state", string(state)),
			zap.Int("violations", len(fieldErrs)))
		return nil, services.NewDomainError(services.ErrorTypeValidation, "submission failed validation", nil).
			WithDetail("fields", fieldErrs)
	}
	state = StateValidated

	if err := s.verifier.Verify(ctx, sub.Token); err != nil {
		s.logger.Warn("challenge verification failed",
			zap.String("state", string(state)), zap.Error(err))
		return nil, err
	}
	state = StateChallengeOK

	if err := s.notifier.Send(ctx, *sub); err != nil {
		s.logger.Error("operator notification failed",
			zap.String("state", string(state)), zap.Error(err))
		return nil, err
	}
	state = StateMailed

	rec := sub.Record()
	if err := s.ledger.Append(ctx, rec); err != nil {
		s.logger.Error("local ledger append failed",
			zap.String("state", string(state)), zap.Error(err))
		return nil, err
	}
	state = StateLocalWritten

	if err := s.mirror.Sync(ctx, rec); err != nil {
		s.logger.Error("remote mirror sync failed",
			zap.String("state", string(state)), zap.Error(err))
		return nil, err
	}
	s.logger.Info("submission processed",
		zap.String("state", string(StateDone)),
		zap.String("email", sub.Email))
	return sub, nil
}
