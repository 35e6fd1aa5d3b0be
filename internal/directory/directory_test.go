package directory

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/parths301/aib-hub/internal/models"
)

func creator(name, city string, t models.MembershipTier, skills ...string) models.Creator {
	return models.Creator{
		FullName: name,
		City:     city,
		Tier:     t,
		Skills:   pq.StringArray(skills),
	}
}

func sample() []models.Creator {
	return []models.Creator{
		creator("Asha Verma", "Indore", models.TierBase, "Video Editor"),
		creator("Rahul Jain", "Mumbai", models.TierGold, "Logo Creator"),
		creator("Priya Nair", "Indore", models.TierPlatinum, "Web Developer"),
		creator("Vikram Shah", "Mumbai", models.TierBase, "Video Editor"),
		creator("Neha Kulkarni", "Pune", models.TierGold, "UI/UX Design"),
	}
}

func names(cs []models.Creator) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.FullName
	}
	return out
}

func TestFilterCreators_EmptyFilterKeepsMembership(t *testing.T) {
	in := sample()
	got := FilterCreators(in, CreatorFilter{})
	assert.Equal(t, names(in), names(got))
}

func TestFilterCreators_AndComposition(t *testing.T) {
	got := FilterCreators(sample(), CreatorFilter{City: "Indore", Skill: "Video Editor"})
	assert.Equal(t, []string{"Asha Verma"}, names(got))
}

func TestFilterCreators_SearchIsCaseInsensitiveOverNameAndBio(t *testing.T) {
	in := sample()
	in[3].Bio = "Award winning colourist"

	assert.Equal(t, []string{"Rahul Jain"}, names(FilterCreators(in, CreatorFilter{Search: "rahul"})))
	assert.Equal(t, []string{"Vikram Shah"}, names(FilterCreators(in, CreatorFilter{Search: "COLOURIST"})))
}

func TestFilterCreators_PurchasedTagsMatchSkillFilter(t *testing.T) {
	in := sample()
	in[0].PurchasedTags = pq.StringArray{"Motion Designer"}

	got := FilterCreators(in, CreatorFilter{Skill: "Motion Designer"})
	assert.Equal(t, []string{"Asha Verma"}, names(got))
}

func TestFilterCreators_UnknownCityReturnsEmpty(t *testing.T) {
	got := FilterCreators(sample(), CreatorFilter{City: "Jaipur"})
	assert.Empty(t, got)
}

func TestRankCreators_TierPrecedence(t *testing.T) {
	got := RankCreators(sample())
	assert.Equal(t, []string{
		"Priya Nair",    // PLATINUM
		"Rahul Jain",    // GOLD
		"Neha Kulkarni", // GOLD
		"Asha Verma",    // BASE
		"Vikram Shah",   // BASE
	}, names(got))
}

// Equal tiers must keep their relative input order (stable sort, no
// secondary key).
func TestRankCreators_Stable(t *testing.T) {
	in := []models.Creator{
		creator("g1", "A", models.TierGold),
		creator("b1", "A", models.TierBase),
		creator("g2", "A", models.TierGold),
		creator("b2", "A", models.TierBase),
		creator("g3", "A", models.TierGold),
	}
	got := RankCreators(in)
	assert.Equal(t, []string{"g1", "g2", "g3", "b1", "b2"}, names(got))
	// input untouched
	assert.Equal(t, "g1", in[0].FullName)
	assert.Equal(t, "b1", in[1].FullName)
}

func TestFilterJobs(t *testing.T) {
	jobs := []models.Job{
		{Title: "Reel Editor", City: "Indore", RequiredSkills: pq.StringArray{"Premiere Pro"}},
		{Title: "Brand Kit", City: "Mumbai", RequiredSkills: pq.StringArray{"Illustrator"}},
		{Title: "Promo Cut", City: "Indore", RequiredSkills: pq.StringArray{"After Effects"}},
	}

	assert.Len(t, FilterJobs(jobs, JobFilter{}), 3)

	got := FilterJobs(jobs, JobFilter{City: "Indore"})
	assert.Len(t, got, 2)

	got = FilterJobs(jobs, JobFilter{City: "Indore", Skill: "After Effects"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Promo Cut", got[0].Title)

	assert.Empty(t, FilterJobs(jobs, JobFilter{City: "Delhi"}))
}
