// Package i18n holds the fixed Arabic string table. The application is
// single-language by design; there is no translation framework.
package i18n

const (
	// Login surface.
	ErrInvalidCredentials = "اسم المستخدم أو كلمة المرور غير صحيحة"

	// Registration queue.
	RegistrationSubmittedTitle = "طلب تسجيل جديد"
	RegistrationSubmittedBody  = "تم إرسال طلب التسجيل بنجاح. سيتم مراجعته من قبل الإدارة."
	RegistrationApprovedTitle  = "تمت الموافقة على التسجيل"
	RegistrationApprovedBody   = "تمت الموافقة على طلب تسجيل %s."
	RegistrationRejectedTitle  = "تم رفض التسجيل"
	RegistrationRejectedBody   = "تم رفض طلب تسجيل %s."

	// Approval workflow.
	SubmitterStageRole    = "رافع الطلب"
	SubmitterStageComment = "تم رفع المستند"
	DocumentApprovedTitle = "تمت الموافقة على المستند"
	DocumentApprovedBody  = "قام %s بالموافقة على المستند \"%s\"."
	DocumentRejectedTitle = "تم رفض المستند"
	DocumentRejectedBody  = "قام %s برفض المستند \"%s\"."
	ChangesRequestedTitle = "طلب تعديلات"
	ChangesRequestedBody  = "طلب %s تعديلات على المستند \"%s\"."

	// Team directory.
	MemberAddedTitle = "عضو جديد في الفريق"
	MemberAddedBody  = "تمت إضافة %s إلى الفريق."

	// Chat surface.
	ChatPeerName  = "أحمد محمد"
	ChatPeerReply = "تم الاستلام، سأطلع عليه وأرد عليك قريباً."

	// BIM gallery.
	ModelUploadedTitle = "اكتمل رفع النموذج"
	ModelUploadedBody  = "أصبح النموذج \"%s\" جاهزاً للعرض."
)
