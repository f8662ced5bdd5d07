package constant

type PublishStatus string

const (
	PublishStatusPending   PublishStatus = "pending_publish"
	PublishStatusPublished PublishStatus = "published"
)

type ModerationStatus string

const (
	ModerationStatusPending           ModerationStatus = "pending"
	ModerationStatusApproved          ModerationStatus = "approved"
	ModerationStatusApprovedWithEdits ModerationStatus = "approved_with_edits"
	ModerationStatusChangesRequested  ModerationStatus = "changes_requested"
	ModerationStatusRejected          ModerationStatus = "rejected"
	ModerationStatusDraft             ModerationStatus = "draft"
)

// ApprovedModerationStatuses are the product states that count towards a shop
// qualifying as featured.
var ApprovedModerationStatuses = []ModerationStatus{
	ModerationStatusApproved,
	ModerationStatusApprovedWithEdits,
}

func IsValidModerationStatus(s ModerationStatus) bool {
	switch s {
	case ModerationStatusPending, ModerationStatusApproved, ModerationStatusApprovedWithEdits,
		ModerationStatusChangesRequested, ModerationStatusRejected, ModerationStatusDraft:
		return true
	}
	return false
}

type PrivacyLevel string

const (
	PrivacyLevelPublic  PrivacyLevel = "public"
	PrivacyLevelLimited PrivacyLevel = "limited"
	PrivacyLevelPrivate PrivacyLevel = "private"
)

type CreationStatus string

const (
	CreationStatusDraft      CreationStatus = "draft"
	CreationStatusIncomplete CreationStatus = "incomplete"
	CreationStatusComplete   CreationStatus = "complete"
)

type BankDataStatus string

const (
	BankDataStatusNotSet   BankDataStatus = "not_set"
	BankDataStatusComplete BankDataStatus = "complete"
)

type MarketplaceApprovalStatus string

const (
	MarketplaceApprovalPending  MarketplaceApprovalStatus = "pending"
	MarketplaceApprovalApproved MarketplaceApprovalStatus = "approved"
	MarketplaceApprovalRejected MarketplaceApprovalStatus = "rejected"
)

// Shop event routing keys published to RabbitMQ on write operations.
const (
	ShopEventCreated      = "shop.created"
	ShopEventUpdated      = "shop.updated"
	ShopEventDeleted      = "shop.deleted"
	ProductEventModerated = "product.moderated"
)

const (
	DefaultListLimit    = 20
	MaxListLimit        = 100
	DefaultFeaturedSize = 8
)
