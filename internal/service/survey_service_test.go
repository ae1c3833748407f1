package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"rawdati/internal/model"
)

// memSurveyRepo is an in-memory SurveyRepo for service tests.
type memSurveyRepo struct {
	surveys map[string]*model.Survey
	nextID  int
	err     error
}

func newMemSurveyRepo() *memSurveyRepo {
	return &memSurveyRepo{surveys: map[string]*model.Survey{}}
}

func (r *memSurveyRepo) put(s *model.Survey) *model.Survey {
	r.surveys[s.ID] = s
	return s
}

func (r *memSurveyRepo) Create(ctx context.Context, survey *model.Survey) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.nextID++
	id := fmt.Sprintf("id%d", r.nextID)
	copied := *survey
	copied.ID = id
	r.surveys[id] = &copied
	return id, nil
}

func (r *memSurveyRepo) GetByID(ctx context.Context, id string) (*model.Survey, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.surveys[id], nil
}

func (r *memSurveyRepo) GetByTenantID(ctx context.Context, tenantID string) ([]*model.Survey, error) {
	var out []*model.Survey
	for _, s := range r.surveys {
		if s.TenantID == tenantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSurveyRepo) SetActive(ctx context.Context, id string, active bool) error {
	if s, ok := r.surveys[id]; ok {
		s.IsActive = active
	}
	return nil
}

func (r *memSurveyRepo) Delete(ctx context.Context, id string) error {
	delete(r.surveys, id)
	return nil
}

func validQuestions() []model.Question {
	return []model.Question{
		{Text: "Happy?", Type: model.QuestionTypeYesNo},
		{Text: "Pick one", Type: model.QuestionTypeSingleChoice, Options: []string{"a", "b"}},
	}
}

func TestSurveyCreateAssignsQuestionIDs(t *testing.T) {
	svc := NewSurveyService(newMemSurveyRepo())

	created, err := svc.Create(context.Background(), &model.Survey{
		TenantID:  "t1",
		Title:     "Spring",
		Questions: validQuestions(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "q1", created.Questions[0].ID)
	require.Equal(t, "q2", created.Questions[1].ID)
	require.Equal(t, model.SurveyTypeGeneral, created.Type)
	require.Equal(t, model.AudienceAll, created.TargetAudience)
}

func TestSurveyCreateValidation(t *testing.T) {
	svc := NewSurveyService(newMemSurveyRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.Survey{TenantID: "t1", Title: "Empty"})
	require.Error(t, err)

	_, err = svc.Create(ctx, &model.Survey{TenantID: "t1", Questions: []model.Question{
		{Text: "Pick", Type: model.QuestionTypeSingleChoice, Options: []string{"only"}},
	}})
	require.Error(t, err)

	_, err = svc.Create(ctx, &model.Survey{TenantID: "t1", Questions: []model.Question{
		{Text: "Happy?", Type: model.QuestionTypeYesNo, Options: []string{"a", "b"}},
	}})
	require.Error(t, err)

	_, err = svc.Create(ctx, &model.Survey{TenantID: "t1", Questions: []model.Question{
		{Text: "What?", Type: "essay"},
	}})
	require.Error(t, err)
}

func TestSurveyGetEnforcesTenantOwnership(t *testing.T) {
	repo := newMemSurveyRepo()
	repo.put(&model.Survey{ID: "s1", TenantID: "t1", Title: "Mine"})
	svc := NewSurveyService(repo)
	ctx := context.Background()

	got, err := svc.Get(ctx, "t1", "s1")
	require.NoError(t, err)
	require.Equal(t, "Mine", got.Title)

	// Another tenant's survey looks like a missing one.
	_, err = svc.Get(ctx, "t2", "s1")
	require.ErrorIs(t, err, ErrSurveyNotFound)

	_, err = svc.Get(ctx, "t1", "nope")
	require.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestSurveySetActive(t *testing.T) {
	repo := newMemSurveyRepo()
	repo.put(&model.Survey{ID: "s1", TenantID: "t1"})
	svc := NewSurveyService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SetActive(ctx, "t1", "s1", true))
	require.True(t, repo.surveys["s1"].IsActive)

	require.ErrorIs(t, svc.SetActive(ctx, "t2", "s1", false), ErrSurveyNotFound)
	require.True(t, repo.surveys["s1"].IsActive)
}
