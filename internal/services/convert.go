package services

import (
	"encoding/json"

	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/services/dto"
	"github.com/parths301/aib-hub/internal/tier"
	"github.com/parths301/aib-hub/internal/utils"
)

// toCreatorDTO builds the public card shape. Status is only attached
// for moderation views, public listings always contain APPROVED rows.
func toCreatorDTO(c *models.Creator, withStatus bool) dto.CreatorDTO {
	d := dto.CreatorDTO{
		ID:            c.ID,
		FullName:      c.FullName,
		City:          c.City,
		Skills:        c.Skills,
		PurchasedTags: c.PurchasedTags,
		Bio:           c.Bio,
		Experience:    c.Experience,
		ProfilePhoto:  c.ProfilePhoto,
		Tier:          c.Tier,
		Badge:         tier.Badge(c.Tier),
		Premium:       tier.IsPremium(c.Tier),
		IsFeatured:    c.IsFeatured,
		WhatsAppURL:   utils.WhatsAppURL(c.WhatsApp),
		CreatedAt:     c.CreatedAt,
	}
	if withStatus {
		d.Status = c.Status
	}
	for _, item := range c.Portfolio {
		d.Portfolio = append(d.Portfolio, dto.PortfolioItemDTO{
			ID:    item.ID,
			Type:  string(item.Type),
			URL:   item.URL,
			Title: item.Title,
		})
	}
	return d
}

func toCreatorDTOs(creators []models.Creator, withStatus bool) []dto.CreatorDTO {
	out := make([]dto.CreatorDTO, 0, len(creators))
	for i := range creators {
		out = append(out, toCreatorDTO(&creators[i], withStatus))
	}
	return out
}

func toJobDTO(j *models.Job) dto.JobDTO {
	return dto.JobDTO{
		ID:             j.ID,
		Title:          j.Title,
		City:           j.City,
		RequiredSkills: j.RequiredSkills,
		Description:    j.Description,
		Budget:         j.Budget,
		Company:        j.Company,
		ContactEmail:   j.ContactEmail,
		WhatsAppURL:    utils.WhatsAppURL(j.WhatsApp),
		PostedDate:     j.PostedDate,
	}
}

func toJobDTOs(jobs []models.Job) []dto.JobDTO {
	out := make([]dto.JobDTO, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobDTO(&jobs[i]))
	}
	return out
}

func toApplicationDTO(a *models.Application) dto.ApplicationDTO {
	d := dto.ApplicationDTO{
		ID:          a.ID,
		JobID:       a.JobID,
		CreatorID:   a.CreatorID,
		CoverLetter: a.CoverLetter,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
	if a.Job != nil {
		d.JobTitle = a.Job.Title
	}
	if a.Creator != nil {
		d.CreatorName = a.Creator.FullName
	}
	return d
}

func toInvitationDTO(inv *models.Invitation) dto.InvitationDTO {
	d := dto.InvitationDTO{
		ID:          inv.ID,
		CreatorID:   inv.CreatorID,
		SenderEmail: inv.SenderEmail,
		JobTitle:    inv.JobTitle,
		JobBudget:   inv.JobBudget,
		Message:     inv.Message,
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt,
	}
	if inv.Creator != nil {
		d.CreatorName = inv.Creator.FullName
	}
	return d
}

func toPlanDTO(p *models.MembershipPlan) dto.MembershipPlanDTO {
	var features []string
	if len(p.Features) > 0 {
		// Corrupt feature blobs degrade to an empty list.
		_ = json.Unmarshal(p.Features, &features)
	}
	return dto.MembershipPlanDTO{
		Tier:         p.Tier,
		Name:         p.Name,
		PriceMonthly: p.PriceMonthly,
		Currency:     p.Currency,
		TagQuota:     p.TagQuota,
		Features:     features,
	}
}

func toUserDTO(u *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
