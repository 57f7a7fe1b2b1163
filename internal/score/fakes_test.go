package score_test

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/saulo-duarte/h2owise/internal/question"
	"github.com/saulo-duarte/h2owise/internal/score"
)

type fakeQuestionRepo struct {
	questions []question.Question
	err       error
}

func (f *fakeQuestionRepo) List(ctx context.Context) ([]question.Question, error) {
	return f.questions, f.err
}

func (f *fakeQuestionRepo) Insert(ctx context.Context, qs []*question.Question) error {
	return f.err
}

func (f *fakeQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return f.err
}

type fakeScoreRepo struct {
	records   []score.ScoreRecord
	insertErr error
	readErr   error
}

func (f *fakeScoreRepo) Insert(ctx context.Context, r *score.ScoreRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, *r)
	return nil
}

func (f *fakeScoreRepo) Top(ctx context.Context, limit int) ([]score.ScoreRecord, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := append([]score.ScoreRecord(nil), f.records...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeScoreRepo) ListByUsername(ctx context.Context, username string) ([]score.ScoreRecord, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	var out []score.ScoreRecord
	for _, r := range f.records {
		if r.Username == username {
			out = append(out, r)
		}
	}
	return out, nil
}
