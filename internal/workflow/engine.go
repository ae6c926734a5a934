// Package workflow implements the approval-chain state machine as a pure
// transform: every event takes a document value and returns a new one,
// together with the notification the caller should post. The package keeps
// no state of its own; callers serialize events per document.
package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/peninsula-eng/peninsula-api/internal/i18n"
	"github.com/peninsula-eng/peninsula-api/internal/models"
)

var (
	// ErrStageNotCurrent means the addressed stage is not awaiting a decision.
	ErrStageNotCurrent = errors.New("stage is not the current stage")
	// ErrUnknownStage means no stage exists at the addressed position.
	ErrUnknownStage = errors.New("unknown stage position")
	// ErrEmptyComment means a decision that requires a comment got none.
	ErrEmptyComment = errors.New("comment is required")
)

// ApproverDescriptor names one approver to place on a new chain, in order.
type ApproverDescriptor struct {
	Role     string
	Approver models.Approver
}

// Notice is the notification request produced by a successful transition.
type Notice struct {
	Title    string
	Message  string
	Severity models.NotificationSeverity
}

// NewChain builds an approval chain from a submitter and an ordered list of
// approvers. The submitter occupies position 1, already approved and
// timestamped; the first approver becomes current, the rest pending. With
// no approvers the chain is a lone approved submitter stage and the
// document is approved on arrival.
func NewChain(submitter models.Approver, approvers []ApproverDescriptor, now time.Time) []models.ApprovalStage {
	decided := now
	stages := make([]models.ApprovalStage, 0, len(approvers)+1)
	stages = append(stages, models.ApprovalStage{
		Position:  1,
		Role:      i18n.SubmitterStageRole,
		Approver:  submitter,
		Status:    models.StageStatusApproved,
		DecidedAt: &decided,
		Comment:   i18n.SubmitterStageComment,
	})
	for i, a := range approvers {
		status := models.StageStatusPending
		if i == 0 {
			status = models.StageStatusCurrent
		}
		stages = append(stages, models.ApprovalStage{
			Position: i + 2,
			Role:     a.Role,
			Approver: a.Approver,
			Status:   status,
		})
	}
	return stages
}

// DeriveStatus computes the document status from its chain: approved when
// every stage is approved, rejected when any stage is rejected, otherwise
// pending approval.
func DeriveStatus(stages []models.ApprovalStage) models.DocumentStatus {
	allApproved := true
	for _, s := range stages {
		if s.Status == models.StageStatusRejected {
			return models.DocumentStatusRejected
		}
		if s.Status != models.StageStatusApproved {
			allApproved = false
		}
	}
	if allApproved && len(stages) > 0 {
		return models.DocumentStatusApproved
	}
	return models.DocumentStatusPendingApproval
}

// Approve marks the current stage at pos as approved and advances the
// chain to the lowest-position pending stage, if any remains.
func Approve(doc models.Document, pos int, comment string, now time.Time) (models.Document, Notice, error) {
	stages, idx, err := stageForDecision(doc.Stages, pos)
	if err != nil {
		return doc, Notice{}, err
	}

	decided := now
	stages[idx].Status = models.StageStatusApproved
	stages[idx].DecidedAt = &decided
	stages[idx].Comment = strings.TrimSpace(comment)

	for i := range stages {
		if stages[i].Status == models.StageStatusPending {
			stages[i].Status = models.StageStatusCurrent
			break
		}
	}

	doc.Stages = stages
	doc.Status = DeriveStatus(stages)
	return doc, Notice{
		Title:    i18n.DocumentApprovedTitle,
		Message:  fmt.Sprintf(i18n.DocumentApprovedBody, stages[idx].Approver.Name, doc.Title),
		Severity: models.NotificationSeveritySuccess,
	}, nil
}

// Reject marks the current stage at pos as rejected, halting the chain.
// Later stages stay pending; the comment is mandatory.
func Reject(doc models.Document, pos int, comment string, now time.Time) (models.Document, Notice, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return doc, Notice{}, ErrEmptyComment
	}
	stages, idx, err := stageForDecision(doc.Stages, pos)
	if err != nil {
		return doc, Notice{}, err
	}

	decided := now
	stages[idx].Status = models.StageStatusRejected
	stages[idx].DecidedAt = &decided
	stages[idx].Comment = comment

	doc.Stages = stages
	doc.Status = DeriveStatus(stages)
	return doc, Notice{
		Title:    i18n.DocumentRejectedTitle,
		Message:  fmt.Sprintf(i18n.DocumentRejectedBody, stages[idx].Approver.Name, doc.Title),
		Severity: models.NotificationSeverityError,
	}, nil
}

// RequestChanges rewinds the chain to the submitter: the requesting stage
// and every previously approved stage except the submitter revert to
// pending, and the submitter stage becomes current for resubmission. The
// comment is mandatory and is stored on the requesting stage.
func RequestChanges(doc models.Document, pos int, comment string, now time.Time) (models.Document, Notice, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return doc, Notice{}, ErrEmptyComment
	}
	stages, idx, err := stageForDecision(doc.Stages, pos)
	if err != nil {
		return doc, Notice{}, err
	}

	stages[idx].Status = models.StageStatusPending
	stages[idx].DecidedAt = nil
	stages[idx].Comment = comment

	for i := range stages {
		if stages[i].Position == 1 {
			stages[i].Status = models.StageStatusCurrent
			stages[i].DecidedAt = nil
			continue
		}
		if stages[i].Status == models.StageStatusApproved {
			stages[i].Status = models.StageStatusPending
			stages[i].DecidedAt = nil
		}
	}

	doc.Stages = stages
	doc.Status = DeriveStatus(stages)
	return doc, Notice{
		Title:    i18n.ChangesRequestedTitle,
		Message:  fmt.Sprintf(i18n.ChangesRequestedBody, stages[idx].Approver.Name, doc.Title),
		Severity: models.NotificationSeverityWarning,
	}, nil
}

// ValidateChain checks the structural invariants every reachable chain
// must satisfy: contiguous 1-based positions, at most one current stage,
// approvals forming a prefix, and nothing but pending after a rejection.
func ValidateChain(stages []models.ApprovalStage) error {
	currents := 0
	rejectedAt := 0
	for i, s := range stages {
		if s.Position != i+1 {
			return errors.Errorf("position %d at index %d breaks the contiguous sequence", s.Position, i)
		}
		if s.Status == models.StageStatusCurrent {
			currents++
		}
		if s.Status == models.StageStatusRejected && rejectedAt == 0 {
			rejectedAt = s.Position
		}
	}
	if currents > 1 {
		return errors.Errorf("%d stages are current, want at most one", currents)
	}
	for _, s := range stages {
		if s.Status == models.StageStatusApproved {
			for _, earlier := range stages[:s.Position-1] {
				if earlier.Status != models.StageStatusApproved {
					return errors.Errorf("stage %d approved before stage %d", s.Position, earlier.Position)
				}
			}
		}
		if rejectedAt > 0 && s.Position > rejectedAt && s.Status != models.StageStatusPending {
			return errors.Errorf("stage %d is %s after the rejection at %d", s.Position, s.Status, rejectedAt)
		}
	}
	if rejectedAt > 0 && currents > 0 {
		return errors.New("a stage is current on a rejected chain")
	}
	return nil
}

// stageForDecision locates pos, checks it is the current stage and
// returns a copy of the chain; the caller's slice is never mutated.
func stageForDecision(stages []models.ApprovalStage, pos int) ([]models.ApprovalStage, int, error) {
	idx := -1
	for i, s := range stages {
		if s.Position == pos {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, 0, errors.Wrapf(ErrUnknownStage, "position %d", pos)
	}
	if stages[idx].Status != models.StageStatusCurrent {
		return nil, 0, errors.Wrapf(ErrStageNotCurrent, "position %d is %s", pos, stages[idx].Status)
	}
	out := make([]models.ApprovalStage, len(stages))
	copy(out, stages)
	return out, idx, nil
}
