package models

import "time"

type DocumentStatus string

const (
	DocumentStatusPendingApproval DocumentStatus = "pending_approval"
	DocumentStatusApproved        DocumentStatus = "approved"
	DocumentStatusRejected        DocumentStatus = "rejected"
)

type StageStatus string

const (
	StageStatusPending  StageStatus = "pending"
	StageStatusCurrent  StageStatus = "current"
	StageStatusApproved StageStatus = "approved"
	StageStatusRejected StageStatus = "rejected"
)

// Approver identifies the person owning one stage of an approval chain.
type Approver struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// ApprovalStage is one link of a document's approval chain. Positions are
// 1-based and contiguous within a chain; position 1 is always the
// submitter stage.
type ApprovalStage struct {
	Position  int         `json:"position"`
	Role      string      `json:"role"`
	Approver  Approver    `json:"approver"`
	Status    StageStatus `json:"status"`
	DecidedAt *time.Time  `json:"decidedAt,omitempty"`
	Comment   string      `json:"comment,omitempty"`
}

// Document is a unit of content subject to approval. Status is derived
// from the chain and never set directly.
type Document struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Author      string          `json:"author"`
	SubmittedAt time.Time       `json:"submittedAt"`
	Status      DocumentStatus  `json:"status"`
	Stages      []ApprovalStage `json:"approvalFlow"`
}

// DocumentMeta carries the presentational fields that pass through the
// core untouched. Kept out of Document so the workflow engine only ever
// sees core state.
type DocumentMeta struct {
	FileName    string `json:"fileName,omitempty"`
	FileType    string `json:"fileType,omitempty"`
	FileSize    string `json:"fileSize,omitempty"`
	Description string `json:"description,omitempty"`
}
