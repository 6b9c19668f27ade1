package serializer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/serializer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ExampleModal struct {
	Name string `json:"name"`
}

type ExampleSerializer struct{}

func (s *ExampleSerializer) Decode(input []byte, output any) error {
	return json.Unmarshal(input, output)
}

func (s *ExampleSerializer) Encode(input any, output io.ByteWriter) error {
	for _, b := range []byte(input.(*ExampleModal).Name) {
		if err := output.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	serializer.Register(&ExampleModal{}, &ExampleSerializer{})
}

func TestBasicSerializerFallback(t *testing.T) {
	writer := bytes.NewBuffer(nil)
	require.NoError(t, serializer.EncodeWithContext(context.Background(), &ExampleModal{Name: "plain"}, writer))
	assert.Equal(t, "plain", writer.String())

	err := serializer.Encode(struct{}{}, writer)
	assert.Error(t, err)
}

func candidate() *model.Candidate {
	return &model.Candidate{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		AnonymousID: "cand-000123abc",
		FirstName:   "Priya",
		LastName:    "Sharma",
		Email:       "priya@example.com",
		Phone:       "+91 98765 43210",
		Bio:         "Backend enthusiast",
		College:     "IIT Delhi",
	}
}

func encode(t *testing.T, ctx context.Context, m any) string {
	t.Helper()
	writer := bytes.NewBuffer(nil)
	require.NoError(t, serializer.EncodeWithContext(ctx, m, writer))
	return writer.String()
}

func TestCandidateRedactedAtEncodeTime(t *testing.T) {
	c := candidate()
	now := time.Now()

	free := policy.WithViewer(context.Background(), policy.NewViewer(uuid.New(), model.RoleIndustry, false, nil, now))
	out := encode(t, free, c)
	assert.Contains(t, out, `"display_name":"Candidate #abc"`)
	assert.NotContains(t, out, "priya@example.com")
	assert.NotContains(t, out, "Priya Sharma")
	assert.Contains(t, out, "IIT Delhi")

	premium := policy.WithViewer(context.Background(), policy.NewViewer(uuid.New(), model.RoleIndustry, true, nil, now))
	out = encode(t, premium, c)
	assert.Contains(t, out, "Priya Sharma")
	assert.Contains(t, out, "priya@example.com")

	// The same record is untouched by earlier projections.
	assert.Equal(t, "priya@example.com", c.Email)

	out = encode(t, context.Background(), c)
	assert.NotContains(t, out, "priya@example.com")
}

func TestProjectApplicationList(t *testing.T) {
	c := candidate()
	apps := []*model.Application{
		{ID: uuid.New(), CandidateID: c.ID, Status: model.ApplicationPending, Candidate: *c},
	}
	ctx := policy.WithViewer(context.Background(), policy.NewViewer(uuid.New(), model.RoleIndustry, false, nil, time.Now()))

	view, err := serializer.Project(ctx, apps)
	require.NoError(t, err)
	items, ok := view.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	app := items[0].(*policy.ApplicationView)
	assert.Equal(t, "Candidate #abc", app.Candidate.DisplayName)
	assert.Nil(t, app.Candidate.Email)
}

func TestUserProjection(t *testing.T) {
	u := &model.User{ID: uuid.New(), Email: "me@example.com", Role: model.RoleCandidate}

	self := policy.WithViewer(context.Background(), policy.NewViewer(u.ID, u.Role, false, nil, time.Now()))
	assert.Contains(t, encode(t, self, u), "me@example.com")

	other := policy.WithViewer(context.Background(), policy.NewViewer(uuid.New(), model.RoleIndustry, true, nil, time.Now()))
	out := encode(t, other, u)
	assert.NotContains(t, out, "me@example.com")
	assert.Contains(t, out, `"role":"CANDIDATE"`)
}

func TestProjectUnregisteredPassesThrough(t *testing.T) {
	in := map[string]int{"a": 1}
	out, err := serializer.Project(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
