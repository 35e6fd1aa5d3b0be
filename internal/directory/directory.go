// Package directory composes search, city and skill filters over fetched
// creator/job collections and ranks creators by membership tier.
package directory

import (
	"sort"
	"strings"

	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/tier"
)

// CreatorFilter holds the three directory filters. Empty fields mean
// "no constraint"; active filters are ANDed.
type CreatorFilter struct {
	Search string
	City   string
	Skill  string
}

func (f CreatorFilter) IsEmpty() bool {
	return f.Search == "" && f.City == "" && f.Skill == ""
}

func (f CreatorFilter) matches(c models.Creator) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.FullName), needle) &&
			!strings.Contains(strings.ToLower(c.Bio), needle) {
			return false
		}
	}
	if f.City != "" && c.City != f.City {
		return false
	}
	if f.Skill != "" && !hasSkill(c, f.Skill) {
		return false
	}
	return true
}

// Purchased tags count as skills for filtering: the listing shows them in
// place of plain skills when present.
func hasSkill(c models.Creator, skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	for _, t := range c.PurchasedTags {
		if t == skill {
			return true
		}
	}
	return false
}

// FilterCreators returns the creators matching f, preserving input order.
func FilterCreators(creators []models.Creator, f CreatorFilter) []models.Creator {
	out := make([]models.Creator, 0, len(creators))
	for _, c := range creators {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// RankCreators sorts by tier precedence (PLATINUM > GOLD > BASE). The sort
// is stable: equal tiers keep their relative input order.
func RankCreators(creators []models.Creator) []models.Creator {
	ranked := make([]models.Creator, len(creators))
	copy(ranked, creators)
	sort.SliceStable(ranked, func(i, j int) bool {
		return tier.Rank(ranked[i].Tier, ranked[j].Tier) < 0
	})
	return ranked
}

// JobFilter filters job briefs. Jobs have no free-text search.
type JobFilter struct {
	City  string
	Skill string
}

func (f JobFilter) IsEmpty() bool {
	return f.City == "" && f.Skill == ""
}

func (f JobFilter) matches(j models.Job) bool {
	if f.City != "" && j.City != f.City {
		return false
	}
	if f.Skill != "" {
		found := false
		for _, s := range j.RequiredSkills {
			if s == f.Skill {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FilterJobs returns the jobs matching f, preserving input order.
func FilterJobs(jobs []models.Job, f JobFilter) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.matches(j) {
			out = append(out, j)
		}
	}
	return out
}
