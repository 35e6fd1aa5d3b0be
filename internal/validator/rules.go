package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/parths301/aib-hub/internal/models"
)

// registerCustomRules installs the domain enum rules. Registration failures
// are startup bugs, not runtime conditions.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-tier", validateTier)
	mustRegister("is-creator-status", validateCreatorStatus)
	mustRegister("is-portfolio-type", validatePortfolioType)
}

// Empty values pass; 'required' owns presence checks.

func validateTier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidTier(models.MembershipTier(value))
}

func validateCreatorStatus(fl validator.FieldLevel) bool {
	switch models.CreatorStatus(fl.Field().String()) {
	case "", models.CreatorStatusPending, models.CreatorStatusApproved, models.CreatorStatusRejected:
		return true
	}
	return false
}

func validatePortfolioType(fl validator.FieldLevel) bool {
	switch models.PortfolioItemType(fl.Field().String()) {
	case "", models.PortfolioItemImage, models.PortfolioItemVideo, models.PortfolioItemSample:
		return true
	}
	return false
}
