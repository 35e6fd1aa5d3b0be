package models

type UserRole string
type CreatorStatus string
type MembershipTier string
type ApplicationStatus string
type InvitationStatus string
type PortfolioItemType string

const (
	UserRoleVisitor UserRole = "VISITOR"
	UserRoleCreator UserRole = "CREATOR"
	UserRoleAdmin   UserRole = "ADMIN"

	CreatorStatusPending  CreatorStatus = "PENDING"
	CreatorStatusApproved CreatorStatus = "APPROVED"
	CreatorStatusRejected CreatorStatus = "REJECTED"

	TierBase     MembershipTier = "BASE"
	TierGold     MembershipTier = "GOLD"
	TierPlatinum MembershipTier = "PLATINUM"

	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"

	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusDeclined InvitationStatus = "DECLINED"

	PortfolioItemImage  PortfolioItemType = "image"
	PortfolioItemVideo  PortfolioItemType = "video"
	PortfolioItemSample PortfolioItemType = "sample"
)

// ValidTier reports whether t is a known membership tier.
func ValidTier(t MembershipTier) bool {
	switch t {
	case TierBase, TierGold, TierPlatinum:
		return true
	}
	return false
}
