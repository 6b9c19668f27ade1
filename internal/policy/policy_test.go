package policy_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCandidate(i int) *model.Candidate {
	cgpa := 8.4
	return &model.Candidate{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		AnonymousID:    fmt.Sprintf("cand-%09dxq%d", i, i%10),
		FirstName:      fmt.Sprintf("Priyanka%d", i),
		LastName:       fmt.Sprintf("Venkatraman%d", i),
		Email:          fmt.Sprintf("priyanka.%d@mailhost.example", i),
		Phone:          fmt.Sprintf("+91-98450-%05d", i),
		City:           "Pune",
		State:          "Maharashtra",
		Country:        "India",
		Bio:            "Backend developer interested in distributed systems.",
		Degree:         "B.Tech",
		EducationLevel: "UNDERGRADUATE",
		College:        "College of Engineering",
		GraduationYear: 2026,
		CGPA:           &cgpa,
		ResumeURL:      fmt.Sprintf("https://files.example/resume-%d.pdf", i),
		PortfolioURL:   fmt.Sprintf("https://portfolio.example/%d", i),
		LinkedinURL:    fmt.Sprintf("https://linkedin.example/in/%d", i),
		GithubURL:      fmt.Sprintf("https://github.example/%d", i),
		Skills: []model.CandidateSkill{
			{Name: "Go", Proficiency: model.ProficiencyAdvanced},
			{Name: "SQL", Proficiency: model.ProficiencyIntermediate},
		},
	}
}

func TestDeriveDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		kind     policy.EntityKind
		anonID   string
		realName string
		disclose bool
		want     string
		wantErr  error
	}{
		{"candidate pseudonym", policy.KindCandidate, "cand-000123abc", "Asha Rao", false, "Candidate #abc", nil},
		{"company pseudonym", policy.KindCompany, "comp-9f8e7d", "Acme Labs", false, "Company #e7d", nil},
		{"case preserved", policy.KindCandidate, "cand-00XyZ", "Asha Rao", false, "Candidate #XyZ", nil},
		{"short identifier verbatim", policy.KindCandidate, "ab", "Asha Rao", false, "Candidate #ab", nil},
		{"exactly three characters", policy.KindCompany, "x1z", "Acme", false, "Company #x1z", nil},
		{"disclosed returns real name", policy.KindCandidate, "cand-000123abc", "Asha Rao", true, "Asha Rao", nil},
		{"empty identifier", policy.KindCandidate, "", "Asha Rao", false, "", domain.ErrInvalidIdentifier},
		{"empty identifier disclosed", policy.KindCompany, "", "Acme", true, "", domain.ErrInvalidIdentifier},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := policy.DeriveDisplayName(tc.kind, tc.anonID, tc.realName, tc.disclose)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeriveDisplayNameStable(t *testing.T) {
	first, err := policy.DeriveDisplayName(policy.KindCandidate, "cand-77aa01", "Real Name", false)
	require.NoError(t, err)
	second, err := policy.DeriveDisplayName(policy.KindCandidate, "cand-77aa01", "Real Name", false)
	require.NoError(t, err)
	renamed, err := policy.DeriveDisplayName(policy.KindCandidate, "cand-77aa01", "Completely Different", false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, renamed)
}

func TestNewAnonymousID(t *testing.T) {
	id := policy.NewAnonymousID(policy.KindCandidate)
	assert.True(t, strings.HasPrefix(id, "cand-"))
	assert.Len(t, id, len("cand-")+12)
	assert.NotEqual(t, id, policy.NewAnonymousID(policy.KindCandidate))
	assert.True(t, strings.HasPrefix(policy.NewAnonymousID(policy.KindCompany), "comp-"))
}

func TestRedactCandidateFreeViewerNeverSeesIdentity(t *testing.T) {
	for i := 0; i < 50; i++ {
		p := testCandidate(i)
		view, err := policy.RedactCandidate(p, false)
		require.NoError(t, err)

		encoded, err := json.Marshal(view)
		require.NoError(t, err)
		body := string(encoded)

		assert.NotContains(t, body, p.Email)
		assert.NotContains(t, body, p.Phone)
		assert.NotContains(t, body, p.FullName())
		assert.NotContains(t, body, p.FirstName)
		assert.NotContains(t, body, p.ResumeURL)
		assert.NotContains(t, body, p.ID.String())
		assert.False(t, view.Disclosed)
		assert.Nil(t, view.CGPA)
		assert.Nil(t, view.City)
	}
}

func TestRedactCandidatePremiumSeesEverything(t *testing.T) {
	for i := 0; i < 20; i++ {
		p := testCandidate(i)
		view, err := policy.RedactCandidate(p, true)
		require.NoError(t, err)

		assert.Equal(t, p.FullName(), view.DisplayName)
		require.NotNil(t, view.ID)
		assert.Equal(t, p.ID, *view.ID)
		assert.Equal(t, p.Email, *view.Email)
		assert.Equal(t, p.Phone, *view.Phone)
		assert.Equal(t, p.City, *view.City)
		assert.Equal(t, p.State, *view.State)
		assert.Equal(t, p.Country, *view.Country)
		assert.Equal(t, p.ResumeURL, *view.ResumeURL)
		assert.Equal(t, p.PortfolioURL, *view.PortfolioURL)
		assert.Equal(t, p.LinkedinURL, *view.LinkedinURL)
		assert.Equal(t, p.GithubURL, *view.GithubURL)
		assert.Equal(t, *p.CGPA, *view.CGPA)
	}
}

func TestRedactCandidateAlwaysVisibleFields(t *testing.T) {
	p := testCandidate(3)
	for _, premium := range []bool{false, true} {
		view, err := policy.RedactCandidate(p, premium)
		require.NoError(t, err)
		assert.Equal(t, p.Bio, view.Bio)
		assert.Equal(t, p.Degree, view.Degree)
		assert.Equal(t, p.College, view.College)
		assert.Equal(t, p.GraduationYear, view.GraduationYear)
		assert.Equal(t, []policy.SkillView{
			{Name: "Go", Proficiency: model.ProficiencyAdvanced},
			{Name: "SQL", Proficiency: model.ProficiencyIntermediate},
		}, view.Skills)
	}
}

func TestRedactCandidateScenario(t *testing.T) {
	p := testCandidate(1)
	p.AnonymousID = "cand-000123abc"
	p.ShowFullName = false

	industry := policy.Viewer{UserID: uuid.New(), Role: model.RoleIndustry, Tier: policy.TierFree}
	view, err := policy.ProjectCandidate(industry, p)
	require.NoError(t, err)
	assert.Equal(t, "Candidate #abc", view.DisplayName)
}

func TestRedactCandidateInvalidIdentifier(t *testing.T) {
	p := testCandidate(1)
	p.AnonymousID = ""
	_, err := policy.RedactCandidate(p, false)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestRedactCompany(t *testing.T) {
	base := model.Company{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		AnonymousID: "comp-5512ab9",
		CompanyName: "Quantum Widgets Pvt Ltd",
		IsVerified:  true,
		Sector:      "Manufacturing",
		Size:        "51-200",
		Website:     "https://quantum-widgets.example",
		Email:       "hr@quantum-widgets.example",
		Phone:       "+91-22-5550-1000",
	}

	tests := []struct {
		name        string
		showName    bool
		premium     bool
		wantName    string
		wantContact bool
	}{
		{"hidden to free viewer", false, false, "Company #ab9", false},
		{"owner published", true, false, "Quantum Widgets Pvt Ltd", true},
		{"premium viewer", false, true, "Quantum Widgets Pvt Ltd", true},
		{"published and premium", true, true, "Quantum Widgets Pvt Ltd", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			p.ShowCompanyName = tc.showName
			view, err := policy.RedactCompany(&p, tc.premium)
			require.NoError(t, err)

			assert.Equal(t, tc.wantName, view.DisplayName)
			assert.True(t, view.IsVerified, "verification badge is never gated")
			if tc.wantContact {
				require.NotNil(t, view.Email)
				assert.Equal(t, p.Email, *view.Email)
				assert.Equal(t, p.Phone, *view.Phone)
				return
			}
			encoded, err := json.Marshal(view)
			require.NoError(t, err)
			assert.NotContains(t, string(encoded), p.CompanyName)
			assert.NotContains(t, string(encoded), p.Email)
			assert.NotContains(t, string(encoded), p.Phone)
		})
	}
}

func TestCandidateAccessByRole(t *testing.T) {
	owner := uuid.New()
	p := testCandidate(9)
	p.UserID = owner

	tests := []struct {
		name   string
		viewer policy.Viewer
		want   bool
	}{
		{"owner", policy.Viewer{UserID: owner, Role: model.RoleCandidate}, true},
		{"admin", policy.Viewer{UserID: uuid.New(), Role: model.RoleAdmin}, true},
		{"free industry", policy.Viewer{UserID: uuid.New(), Role: model.RoleIndustry}, false},
		{"premium industry", policy.Viewer{UserID: uuid.New(), Role: model.RoleIndustry, Tier: policy.TierPremium}, true},
		{"free institute", policy.Viewer{UserID: uuid.New(), Role: model.RoleInstitute}, false},
		{"premium institute", policy.Viewer{UserID: uuid.New(), Role: model.RoleInstitute, Tier: policy.TierPremium}, true},
		{"other free candidate", policy.Viewer{UserID: uuid.New(), Role: model.RoleCandidate}, false},
		{"anonymous", policy.Viewer{}, false},
		{"unknown role premium", policy.Viewer{UserID: uuid.New(), Role: "GUEST", Tier: policy.TierPremium}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.CandidateAccess(tc.viewer, p))
		})
	}
}

func TestNewViewerTier(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-time.Minute)

	assert.Equal(t, policy.TierFree, policy.NewViewer(uuid.New(), model.RoleIndustry, false, nil, now).Tier)
	assert.Equal(t, policy.TierPremium, policy.NewViewer(uuid.New(), model.RoleIndustry, true, nil, now).Tier)
	assert.Equal(t, policy.TierPremium, policy.NewViewer(uuid.New(), model.RoleIndustry, true, &future, now).Tier)
	assert.Equal(t, policy.TierFree, policy.NewViewer(uuid.New(), model.RoleIndustry, true, &past, now).Tier)
}

func TestProjectApplicationRedactsCandidate(t *testing.T) {
	cand := testCandidate(4)
	app := &model.Application{
		ID:            uuid.New(),
		CandidateID:   cand.ID,
		OpportunityID: uuid.New(),
		Status:        model.ApplicationPending,
		CoverLetter:   "I would love to work on your platform team.",
		AppliedAt:     time.Now(),
		Candidate:     *cand,
	}

	view, err := policy.ProjectApplication(policy.Viewer{UserID: uuid.New(), Role: model.RoleIndustry}, app)
	require.NoError(t, err)
	assert.Equal(t, app.CoverLetter, view.CoverLetter)
	assert.Nil(t, view.Candidate.Email)
	assert.True(t, strings.HasPrefix(view.Candidate.DisplayName, "Candidate #"))
}

func TestCandidatePreferencesDoNotWidenDisclosure(t *testing.T) {
	p := testCandidate(4)
	p.AnonymousID = "cand-000456def"
	p.ShowFullName = true
	p.ShowContact = true

	industry := policy.Viewer{UserID: uuid.New(), Role: model.RoleIndustry, Tier: policy.TierFree}
	view, err := policy.ProjectCandidate(industry, p)
	require.NoError(t, err)
	assert.Equal(t, "Candidate #def", view.DisplayName)
	assert.False(t, view.Disclosed)
	assert.Nil(t, view.Email)
	assert.Nil(t, view.Phone)

	out, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(out), p.LastName)
	assert.NotContains(t, string(out), p.Email)
}
