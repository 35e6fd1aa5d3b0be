package services

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"github.com/parths301/aib-hub/internal/email"
	"github.com/parths301/aib-hub/internal/models"
	"github.com/parths301/aib-hub/internal/repositories"
)

// In-memory repository fakes for service tests.

// fakeTxRunner runs the callback directly; the repo fakes ignore the tx
// argument, so a nil *gorm.DB is fine here.
type fakeTxRunner struct{}

func (fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, _ ...*sql.TxOptions) error {
	return fc(nil)
}

type fakeUserRepo struct {
	users  map[string]*models.User // keyed by id
	tokens map[string]*models.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) CreateTx(tx *gorm.DB, user *models.User) error { return r.Create(user) }

func (r *fakeUserRepo) Delete(userID string) error {
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return t, nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteUserRefreshTokens(userID string) error {
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeUserRepo) CleanExpiredRefreshTokens() error { return nil }

type fakeCreatorRepo struct {
	creators map[string]*models.Creator
	nextID   int
}

func newFakeCreatorRepo() *fakeCreatorRepo {
	return &fakeCreatorRepo{creators: make(map[string]*models.Creator)}
}

func (r *fakeCreatorRepo) add(c *models.Creator) *models.Creator {
	if c.ID == "" {
		r.nextID++
		c.ID = fmt.Sprintf("creator-%d", r.nextID)
	}
	r.creators[c.ID] = c
	return c
}

func (r *fakeCreatorRepo) FindByID(id string) (*models.Creator, error) {
	c, ok := r.creators[id]
	if !ok {
		return nil, repositories.ErrCreatorNotFound
	}
	return c, nil
}

func (r *fakeCreatorRepo) FindByLinkedUserID(userID string) (*models.Creator, error) {
	for _, c := range r.creators {
		if c.LinkedUserID != nil && *c.LinkedUserID == userID {
			return c, nil
		}
	}
	return nil, repositories.ErrCreatorNotFound
}

func (r *fakeCreatorRepo) FindApproved() ([]models.Creator, error) {
	var out []models.Creator
	for i := 1; i <= r.nextID; i++ {
		c, ok := r.creators[fmt.Sprintf("creator-%d", i)]
		if ok && c.Status == models.CreatorStatusApproved {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCreatorRepo) FindAll() ([]models.Creator, error) {
	var out []models.Creator
	for i := 1; i <= r.nextID; i++ {
		if c, ok := r.creators[fmt.Sprintf("creator-%d", i)]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCreatorRepo) Create(creator *models.Creator) error {
	r.add(creator)
	return nil
}

func (r *fakeCreatorRepo) CreateTx(tx *gorm.DB, creator *models.Creator) error {
	return r.Create(creator)
}

func (r *fakeCreatorRepo) UpdateProfile(creator *models.Creator) error {
	if _, ok := r.creators[creator.ID]; !ok {
		return repositories.ErrCreatorNotFound
	}
	r.creators[creator.ID] = creator
	return nil
}

func (r *fakeCreatorRepo) UpdateTags(creatorID string, tags []string) error {
	c, ok := r.creators[creatorID]
	if !ok {
		return repositories.ErrCreatorNotFound
	}
	c.PurchasedTags = tags
	return nil
}

func (r *fakeCreatorRepo) UpdateTier(creatorID string, t models.MembershipTier) error {
	c, ok := r.creators[creatorID]
	if !ok {
		return repositories.ErrCreatorNotFound
	}
	c.Tier = t
	return nil
}

func (r *fakeCreatorRepo) UpdateStatus(creatorID string, status models.CreatorStatus) error {
	c, ok := r.creators[creatorID]
	if !ok {
		return repositories.ErrCreatorNotFound
	}
	c.Status = status
	return nil
}

func (r *fakeCreatorRepo) SetFeatured(creatorID string, featured bool) error {
	c, ok := r.creators[creatorID]
	if !ok {
		return repositories.ErrCreatorNotFound
	}
	c.IsFeatured = featured
	return nil
}

func (r *fakeCreatorRepo) Delete(creatorID string) error {
	delete(r.creators, creatorID)
	return nil
}

func (r *fakeCreatorRepo) DistinctCities() ([]string, error) {
	seen := map[string]bool{}
	var cities []string
	for _, c := range r.creators {
		if c.Status == models.CreatorStatusApproved && c.City != "" && !seen[c.City] {
			seen[c.City] = true
			cities = append(cities, c.City)
		}
	}
	return cities, nil
}

func (r *fakeCreatorRepo) AddPortfolioItem(item *models.PortfolioItem) error {
	c, ok := r.creators[item.CreatorID]
	if !ok {
		return repositories.ErrCreatorNotFound
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", len(c.Portfolio)+1)
	}
	c.Portfolio = append(c.Portfolio, *item)
	return nil
}

func (r *fakeCreatorRepo) DeletePortfolioItem(creatorID, itemID string) error {
	c, ok := r.creators[creatorID]
	if !ok {
		return repositories.ErrCreatorNotFound
	}
	for i, item := range c.Portfolio {
		if item.ID == itemID {
			c.Portfolio = append(c.Portfolio[:i], c.Portfolio[i+1:]...)
			return nil
		}
	}
	return repositories.ErrPortfolioItemNotFound
}

type fakeJobRepo struct {
	jobs   map[string]*models.Job
	nextID int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) FindAll() ([]models.Job, error) {
	var out []models.Job
	for i := r.nextID; i >= 1; i-- {
		if j, ok := r.jobs[fmt.Sprintf("job-%d", i)]; ok {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindLatest(limit int) ([]models.Job, error) {
	all, _ := r.FindAll()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	if job.ID == "" {
		r.nextID++
		job.ID = fmt.Sprintf("job-%d", r.nextID)
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Delete(jobID string) error {
	if _, ok := r.jobs[jobID]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, jobID)
	return nil
}

func (r *fakeJobRepo) DistinctCities() ([]string, error) {
	seen := map[string]bool{}
	var cities []string
	for _, j := range r.jobs {
		if j.City != "" && !seen[j.City] {
			seen[j.City] = true
			cities = append(cities, j.City)
		}
	}
	return cities, nil
}

type fakeApplicationRepo struct {
	applications []*models.Application
}

func (r *fakeApplicationRepo) Create(app *models.Application) error {
	for _, a := range r.applications {
		if a.JobID == app.JobID && a.CreatorID == app.CreatorID {
			return repositories.ErrDuplicateApplication
		}
	}
	app.ID = fmt.Sprintf("app-%d", len(r.applications)+1)
	r.applications = append(r.applications, app)
	return nil
}

func (r *fakeApplicationRepo) Exists(jobID, creatorID string) (bool, error) {
	for _, a := range r.applications {
		if a.JobID == jobID && a.CreatorID == creatorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) FindByCreator(creatorID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.CreatorID == creatorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeInvitationRepo struct {
	invitations []*models.Invitation
}

func (r *fakeInvitationRepo) Create(inv *models.Invitation) error {
	inv.ID = fmt.Sprintf("inv-%d", len(r.invitations)+1)
	r.invitations = append(r.invitations, inv)
	return nil
}

func (r *fakeInvitationRepo) FindByCreator(creatorID string) ([]models.Invitation, error) {
	var out []models.Invitation
	for _, inv := range r.invitations {
		if inv.CreatorID == creatorID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) FindAll() ([]models.Invitation, error) {
	var out []models.Invitation
	for _, inv := range r.invitations {
		out = append(out, *inv)
	}
	return out, nil
}

type fakeContactRepo struct {
	messages []*models.ContactMessage
}

func (r *fakeContactRepo) Create(msg *models.ContactMessage) error {
	msg.ID = fmt.Sprintf("msg-%d", len(r.messages)+1)
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeContactRepo) FindAll() ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	for _, m := range r.messages {
		out = append(out, *m)
	}
	return out, nil
}

type fakeMembershipRepo struct {
	plans []models.MembershipPlan
}

func (r *fakeMembershipRepo) FindActivePlans() ([]models.MembershipPlan, error) {
	var out []models.MembershipPlan
	for _, p := range r.plans {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeMembershipRepo) FindPlanByTier(t models.MembershipTier) (*models.MembershipPlan, error) {
	for i := range r.plans {
		if r.plans[i].Tier == t {
			return &r.plans[i], nil
		}
	}
	return nil, repositories.ErrPlanNotFound
}

// recordingEmailProvider captures sent templates for assertions.
type recordingEmailProvider struct {
	sent []sentEmail
}

type sentEmail struct {
	to       []string
	subject  string
	template string
	data     email.TemplateData
}

func (p *recordingEmailProvider) Send(emailMsg *email.Email) error { return nil }

func (p *recordingEmailProvider) SendTemplate(to []string, subject string, templateName string, data email.TemplateData) error {
	p.sent = append(p.sent, sentEmail{to: to, subject: subject, template: templateName, data: data})
	return nil
}

func (p *recordingEmailProvider) Validate() error { return nil }
func (p *recordingEmailProvider) Close() error    { return nil }
