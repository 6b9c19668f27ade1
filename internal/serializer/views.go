package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/google/uuid"
)

// projector applies a redaction function at encode time, using the viewer
// stored in the request context. A context without a viewer gets the
// anonymous projection.
type projector[T any] struct {
	project func(policy.Viewer, T) (any, error)
}

func (p projector[T]) ProjectWithContext(ctx context.Context, input any) (any, error) {
	m, ok := input.(T)
	if !ok {
		return nil, fmt.Errorf("serializer for %T cannot encode %T", *new(T), input)
	}
	viewer, _ := policy.ViewerFromContext(ctx)
	return p.project(viewer, m)
}

func (p projector[T]) EncodeWithContext(ctx context.Context, input any, output io.ByteWriter) error {
	view, err := p.ProjectWithContext(ctx, input)
	if err != nil {
		return err
	}
	return writeJSON(output, view)
}

func (p projector[T]) DecodeWithContext(ctx context.Context, input []byte, output any) error {
	return json.Unmarshal(input, output)
}

func writeJSON(output io.ByteWriter, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal view: %w", err)
	}
	if w, ok := output.(io.Writer); ok {
		_, err = w.Write(data)
		return err
	}
	for _, b := range data {
		if err := output.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// each lifts a single-record projection over a slice.
func each[T any](project func(policy.Viewer, T) (any, error)) func(policy.Viewer, []T) (any, error) {
	return func(v policy.Viewer, items []T) (any, error) {
		out := make([]any, 0, len(items))
		for _, item := range items {
			view, err := project(v, item)
			if err != nil {
				return nil, err
			}
			out = append(out, view)
		}
		return out, nil
	}
}

// AccountView is what other members see of an account.
type AccountView struct {
	ID   uuid.UUID  `json:"id"`
	Role model.Role `json:"role"`
}

func projectUser(v policy.Viewer, u *model.User) (any, error) {
	if v.UserID == u.ID || v.Role == model.RoleAdmin {
		return u, nil
	}
	return AccountView{ID: u.ID, Role: u.Role}, nil
}

func projectCandidate(v policy.Viewer, c *model.Candidate) (any, error) {
	return policy.ProjectCandidate(v, c)
}

func projectCompany(v policy.Viewer, c *model.Company) (any, error) {
	return policy.ProjectCompany(v, c)
}

func projectOpportunity(v policy.Viewer, o *model.Opportunity) (any, error) {
	return policy.ProjectOpportunity(v, o)
}

func projectApplication(v policy.Viewer, a *model.Application) (any, error) {
	return policy.ProjectApplication(v, a)
}

func init() {
	RegisterContextual(&model.User{}, projector[*model.User]{project: projectUser})
	RegisterContextual(&model.Candidate{}, projector[*model.Candidate]{project: projectCandidate})
	RegisterContextual(&model.Company{}, projector[*model.Company]{project: projectCompany})
	RegisterContextual(&model.Opportunity{}, projector[*model.Opportunity]{project: projectOpportunity})
	RegisterContextual(&model.Application{}, projector[*model.Application]{project: projectApplication})

	RegisterContextual([]*model.Opportunity{}, projector[[]*model.Opportunity]{project: each(projectOpportunity)})
	RegisterContextual([]*model.Application{}, projector[[]*model.Application]{project: each(projectApplication)})
}
