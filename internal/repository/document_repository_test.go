package repository

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peninsula-eng/peninsula-api/internal/models"
)

func sampleDocument(id string) models.Document {
	return models.Document{
		ID:          id,
		Title:       "مخطط " + id,
		Category:    "مخططات",
		Author:      "أدمن",
		SubmittedAt: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
		Status:      models.DocumentStatusPendingApproval,
		Stages: []models.ApprovalStage{
			{Position: 1, Role: "رافع الطلب", Status: models.StageStatusApproved},
			{Position: 2, Role: "مدير المشروع", Status: models.StageStatusCurrent},
		},
	}
}

func TestDocumentListNewestFirst(t *testing.T) {
	repo := NewDocumentRepository()
	repo.Create(sampleDocument("a"), models.DocumentMeta{})
	repo.Create(sampleDocument("b"), models.DocumentMeta{})

	docs := repo.List()
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)
}

func TestDocumentGetReturnsCopy(t *testing.T) {
	repo := NewDocumentRepository()
	repo.Create(sampleDocument("a"), models.DocumentMeta{})

	doc, ok := repo.Get("a")
	require.True(t, ok)
	doc.Stages[1].Status = models.StageStatusRejected

	again, ok := repo.Get("a")
	require.True(t, ok)
	assert.Equal(t, models.StageStatusCurrent, again.Stages[1].Status)
}

func TestDocumentMutateReplacesOnlyOnSuccess(t *testing.T) {
	repo := NewDocumentRepository()
	repo.Create(sampleDocument("a"), models.DocumentMeta{})

	boom := errors.New("boom")
	_, err := repo.Mutate("a", func(doc models.Document) (models.Document, error) {
		doc.Status = models.DocumentStatusRejected
		return doc, boom
	})
	require.ErrorIs(t, err, boom)

	doc, ok := repo.Get("a")
	require.True(t, ok)
	assert.Equal(t, models.DocumentStatusPendingApproval, doc.Status)

	updated, err := repo.Mutate("a", func(doc models.Document) (models.Document, error) {
		doc.Status = models.DocumentStatusApproved
		return doc, nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusApproved, updated.Status)
}

func TestDocumentMutateUnknownID(t *testing.T) {
	repo := NewDocumentRepository()
	_, err := repo.Mutate("missing", func(doc models.Document) (models.Document, error) {
		return doc, nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentMeta(t *testing.T) {
	repo := NewDocumentRepository()
	meta := models.DocumentMeta{FileName: "plan.dwg", FileType: "DWG", FileSize: "2.4 MB"}
	repo.Create(sampleDocument("a"), meta)
	assert.Equal(t, meta, repo.Meta("a"))
	assert.Equal(t, models.DocumentMeta{}, repo.Meta("missing"))
}
