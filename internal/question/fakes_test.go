package question_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/h2owise/internal/question"
)

type fakeRepo struct {
	questions []question.Question
	deleted   []uuid.UUID
	err       error
}

func (f *fakeRepo) List(ctx context.Context) ([]question.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

func (f *fakeRepo) Insert(ctx context.Context, qs []*question.Question) error {
	if f.err != nil {
		return f.err
	}
	for _, q := range qs {
		f.questions = append(f.questions, *q)
	}
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}
