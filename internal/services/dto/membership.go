package dto

import "github.com/parths301/aib-hub/internal/models"

type MembershipPlanDTO struct {
	Tier         models.MembershipTier `json:"tier"`
	Name         string                `json:"name"`
	PriceMonthly float64               `json:"price_monthly"`
	Currency     string                `json:"currency"`
	TagQuota     int                   `json:"tag_quota"`
	Features     []string              `json:"features"`
}

type MembershipPlansResponse struct {
	Plans []MembershipPlanDTO `json:"plans"`
}
