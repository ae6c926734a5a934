package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/peninsula-eng/peninsula-api/internal/models"
)

// Seed fills the repositories with the demo data the screens open with.
func Seed(docs DocumentRepository, team TeamRepository, events EventRepository, bim ModelRepository, messages MessageRepository) {
	seedDocuments(docs)
	seedTeam(team)
	seedEvents(events)
	seedModels(bim)
	seedMessages(messages)
}

func seedDocuments(repo DocumentRepository) {
	at := func(day string) *time.Time {
		t, _ := time.Parse("2006-01-02", day)
		return &t
	}
	submitted, _ := time.Parse("2006-01-02", "2024-03-10")

	doc := models.Document{
		ID:          uuid.NewString(),
		Title:       "مخطط الطابق الأول",
		Category:    "architectural",
		Author:      "سارة أحمد",
		SubmittedAt: submitted,
		Status:      models.DocumentStatusPendingApproval,
		Stages: []models.ApprovalStage{
			{
				Position: 1,
				Role:     "رافع الطلب",
				Approver: models.Approver{
					Name:   "سارة أحمد",
					Role:   "مهندس معماري",
					Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=40&h=40&fit=crop&crop=face",
				},
				Status:    models.StageStatusApproved,
				DecidedAt: at("2024-03-10"),
				Comment:   "تم رفع المخططات النهائية للمراجعة",
			},
			{
				Position: 2,
				Role:     "المدير المباشر",
				Approver: models.Approver{
					Name:   "محمد علي",
					Role:   "مدير القسم المعماري",
					Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=40&h=40&fit=crop&crop=face",
				},
				Status:    models.StageStatusApproved,
				DecidedAt: at("2024-03-11"),
				Comment:   "تمت المراجعة والموافقة على المخططات",
			},
			{
				Position: 3,
				Role:     "مدير الإدارة",
				Approver: models.Approver{Name: "أحمد محمد", Role: "مدير إدارة المشاريع"},
				Status:   models.StageStatusCurrent,
			},
			{
				Position: 4,
				Role:     "مدير المنطقة",
				Approver: models.Approver{Name: "خالد عبدالله", Role: "مدير المنطقة الغربية"},
				Status:   models.StageStatusPending,
			},
			{
				Position: 5,
				Role:     "مدير المراسلات والمتابعة",
				Approver: models.Approver{Name: "فيصل العمري", Role: "مدير المراسلات والمتابعة"},
				Status:   models.StageStatusPending,
			},
		},
	}
	repo.Create(doc, models.DocumentMeta{
		FileName: "floor-plan-1.pdf",
		FileType: "PDF",
		FileSize: "2.4 MB",
	})
}

func seedTeam(repo TeamRepository) {
	for _, m := range []models.TeamMember{
		{
			Name:       "أحمد محمد",
			Role:       "مدير المشروع",
			Email:      "ahmed@example.com",
			Phone:      "+966 50 123 4567",
			Department: "الإدارة",
			Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
		},
		{
			Name:       "سارة أحمد",
			Role:       "مهندسة معمارية",
			Email:      "sara@example.com",
			Phone:      "+966 50 234 5678",
			Department: "الهندسة",
			Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop&crop=face",
		},
		{
			Name:       "محمد علي",
			Role:       "مهندس مدني",
			Email:      "mohammed@example.com",
			Phone:      "+966 50 345 6789",
			Department: "الهندسة",
			Avatar:     "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face",
		},
		{
			Name:       "تامر الجوهري",
			Role:       "مدير تقنية المعلومات",
			Email:      "tamer@example.com",
			Phone:      "+966 50 456 7890",
			Department: "تقنية المعلومات",
		},
	} {
		m.ID = uuid.NewString()
		repo.Add(m)
	}
}

func seedEvents(repo EventRepository) {
	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02 15:04", d)
		return t
	}
	for _, e := range []models.TimelineEvent{
		{
			Title:       "اجتماع مراجعة التصميم",
			Date:        day("2024-03-15 10:00"),
			Type:        models.EventTypeMeeting,
			Status:      models.EventStatusUpcoming,
			Location:    "قاعة الاجتماعات الرئيسية",
			Description: "مراجعة التصاميم النهائية للمشروع مع الفريق والعميل",
		},
		{
			Title:       "تسليم المخططات النهائية",
			Date:        day("2024-03-20 14:00"),
			Type:        models.EventTypeDeadline,
			Status:      models.EventStatusUpcoming,
			Description: "تسليم جميع المخططات المعمارية والإنشائية",
		},
		{
			Title:    "زيارة الموقع",
			Date:     day("2024-03-25 09:00"),
			Type:     models.EventTypeSiteVisit,
			Status:   models.EventStatusUpcoming,
			Location: "موقع المشروع - الرياض",
		},
		{
			Title:       "اكتمال المرحلة الأولى",
			Date:        day("2024-03-30 00:00"),
			Type:        models.EventTypeMilestone,
			Status:      models.EventStatusUpcoming,
			Description: "إنجاز جميع متطلبات المرحلة الأولى من المشروع",
		},
	} {
		e.ID = uuid.NewString()
		repo.Add(e)
	}
}

func seedModels(repo ModelRepository) {
	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}
	for _, m := range []models.BIMModel{
		{
			Name:          "نظام التكييف المركزي",
			Discipline:    "ميكانيكي",
			Version:       "1.5",
			Status:        models.ModelStatusActive,
			Conflicts:     1,
			Collaborators: 3,
			LastUpdated:   day("2024-03-13"),
			Thumbnail:     "https://images.unsplash.com/photo-1581094794329-c8112a89af12?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		},
		{
			Name:          "نموذج الهيكل الإنشائي",
			Discipline:    "إنشائي",
			Version:       "1.8",
			Status:        models.ModelStatusReview,
			Conflicts:     2,
			Collaborators: 4,
			LastUpdated:   day("2024-03-14"),
			Thumbnail:     "https://images.unsplash.com/photo-1581094271901-8022df4466f9?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		},
		{
			Name:          "المخطط المعماري الرئيسي",
			Discipline:    "معماري",
			Version:       "2.1",
			Status:        models.ModelStatusActive,
			Conflicts:     0,
			Collaborators: 5,
			LastUpdated:   day("2024-03-15"),
			Thumbnail:     "https://images.unsplash.com/photo-1574691250077-03a929faece5?w=800&auto=format&fit=crop&q=60&ixlib=rb-4.0.3",
		},
	} {
		m.ID = uuid.NewString()
		repo.Add(m)
	}
}

func seedMessages(repo MessageRepository) {
	at := func(d string) time.Time {
		t, _ := time.Parse(time.RFC3339, d)
		return t
	}
	for _, m := range []models.ChatMessage{
		{
			Sender: "أحمد محمد",
			Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=40&h=40&fit=crop&crop=face",
			Body:   "هل تم مراجعة المخططات الجديدة؟",
			SentAt: at("2024-03-15T10:30:00Z"),
			Status: models.MessageStatusRead,
		},
		{
			Sender: "أنت",
			Body:   "نعم، سأرسل التعليقات خلال ساعة",
			SentAt: at("2024-03-15T10:35:00Z"),
			Own:    true,
			Status: models.MessageStatusRead,
		},
		{
			Sender: "سارة أحمد",
			Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=40&h=40&fit=crop&crop=face",
			Body:   "يجب أن نجتمع لمناقشة التغييرات في التصميم",
			SentAt: at("2024-03-15T11:15:00Z"),
			Status: models.MessageStatusDelivered,
		},
	} {
		m.ID = uuid.NewString()
		repo.Append(m)
	}
}
