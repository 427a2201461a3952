// Package registration accepts registration form submissions and hands them to
// a Sink. Submissions are never validated: blank or missing fields are kept as
// empty strings and the submitter always gets an acknowledgment.
package registration

import (
	"context"
	"log/slog"
	"time"

	"github.com/kyra-labs/internship-dashboard/internal/models"
	"github.com/kyra-labs/internship-dashboard/internal/policy"
	"github.com/kyra-labs/internship-dashboard/internal/utils"
)

const MsgSubmitted = "Form submitted successfully!"

// Submission is one press of the form's submit button.
type Submission struct {
	SessionID string
	Role      models.Role
	Fields    map[string]string
}

// Receipt acknowledges a submission.
type Receipt struct {
	ID      string `json:"submission_id"`
	Message string `json:"message"`
}

// Sink stores acknowledged submissions somewhere.
type Sink interface {
	Record(ctx context.Context, reg *models.Registration) error
}

// Discard drops every submission.
type Discard struct{}

func (Discard) Record(context.Context, *models.Registration) error { return nil }

// Normalize keeps exactly the fields of role's schema. Unknown keys are
// dropped and missing ones become empty strings.
func Normalize(role models.Role, fields map[string]string) map[string]string {
	keys := policy.FieldKeys(role)
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = fields[k]
	}
	return out
}

type Service struct {
	sink Sink
	log  *slog.Logger
	now  func() time.Time
}

func NewService(sink Sink, log *slog.Logger) *Service {
	if sink == nil {
		sink = Discard{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{sink: sink, log: log, now: time.Now}
}

// Submit records sub and acknowledges it. A failing sink is logged but does not
// change the acknowledgment the user sees.
func (s *Service) Submit(ctx context.Context, sub Submission) Receipt {
	id, err := utils.GenerateSubmissionID()
	if err != nil {
		id = utils.GenerateID()
	}
	fields := Normalize(sub.Role, sub.Fields)
	reg := &models.Registration{
		ID:        id,
		SessionID: sub.SessionID,
		Role:      sub.Role,
		Fields:    utils.DatatypesJSONMapFromStrings(fields),
		CreatedAt: s.now(),
	}
	if err := s.sink.Record(ctx, reg); err != nil {
		s.log.Error("registration not recorded",
			slog.String("submission_id", id),
			slog.String("role", string(sub.Role)),
			slog.String("error", err.Error()))
	} else {
		s.log.Info("registration submitted",
			slog.String("submission_id", id),
			slog.String("role", string(sub.Role)))
	}
	return Receipt{ID: id, Message: MsgSubmitted}
}
