package score_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/h2owise/internal/config"
	"github.com/saulo-duarte/h2owise/internal/question"
	"github.com/saulo-duarte/h2owise/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSubmit(t *testing.T) {
	q1 := newQuestion(2)
	q2 := newQuestion(0)
	questions := &fakeQuestionRepo{questions: []question.Question{q1, q2}}

	t.Run("PersistsScoreAndBadge", func(t *testing.T) {
		scores := &fakeScoreRepo{}
		svc := score.NewService(scores, questions)

		res, err := svc.Submit(context.Background(), score.SubmitDTO{
			Answers:  map[uuid.UUID]int{q1.ID: 2, q2.ID: 1},
			Username: strPtr("ana"),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Score)
		assert.Equal(t, score.BadgeLearner, res.Badge)

		require.Len(t, scores.records, 1)
		rec := scores.records[0]
		assert.Equal(t, "ana", rec.Username)
		assert.Equal(t, 1, rec.Score)
		assert.Equal(t, score.BadgeLearner, rec.Badge)
		assert.NotEqual(t, uuid.Nil, rec.ID)
	})

	t.Run("DefaultsUsername", func(t *testing.T) {
		scores := &fakeScoreRepo{}
		svc := score.NewService(scores, questions)

		_, err := svc.Submit(context.Background(), score.SubmitDTO{Answers: map[uuid.UUID]int{}})
		require.NoError(t, err)
		require.Len(t, scores.records, 1)
		assert.Equal(t, score.DefaultUsername, scores.records[0].Username)

		_, err = svc.Submit(context.Background(), score.SubmitDTO{Answers: map[uuid.UUID]int{}, Username: strPtr("   ")})
		require.NoError(t, err)
		assert.Equal(t, score.DefaultUsername, scores.records[1].Username)
	})

	t.Run("QuestionStoreFailure", func(t *testing.T) {
		scores := &fakeScoreRepo{}
		svc := score.NewService(scores, &fakeQuestionRepo{err: errors.New("connection refused")})

		_, err := svc.Submit(context.Background(), score.SubmitDTO{Answers: map[uuid.UUID]int{}})
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrStore)
		assert.Empty(t, scores.records)
	})

	t.Run("InsertFailure", func(t *testing.T) {
		svc := score.NewService(&fakeScoreRepo{insertErr: errors.New("boom")}, questions)

		_, err := svc.Submit(context.Background(), score.SubmitDTO{Answers: map[uuid.UUID]int{}})
		assert.ErrorIs(t, err, config.ErrStore)
	})
}

func TestLeaderboard(t *testing.T) {
	scores := &fakeScoreRepo{}
	for i := 0; i < 15; i++ {
		scores.records = append(scores.records, score.ScoreRecord{ID: uuid.New(), Username: "u", Score: i})
	}
	svc := score.NewService(scores, &fakeQuestionRepo{})

	top, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, top, score.LeaderboardSize)
	assert.Equal(t, 14, top[0].Score)
	assert.Equal(t, 5, top[9].Score)

	empty, err := score.NewService(&fakeScoreRepo{}, &fakeQuestionRepo{}).Leaderboard(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBadges(t *testing.T) {
	scores := &fakeScoreRepo{records: []score.ScoreRecord{
		{Username: "bia", Badge: score.BadgeSaver},
		{Username: "bia", Badge: score.BadgeSaver},
		{Username: "caio", Badge: score.BadgeLearner},
		{Username: "bia", Badge: score.BadgeGuru},
	}}
	svc := score.NewService(scores, &fakeQuestionRepo{})

	t.Run("DistinctFirstSeen", func(t *testing.T) {
		res, err := svc.Badges(context.Background(), "bia")
		require.NoError(t, err)
		assert.Equal(t, "bia", res.Username)
		assert.Equal(t, []score.Badge{score.BadgeSaver, score.BadgeGuru}, res.Badges)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		res, err := svc.Badges(context.Background(), "nobody")
		require.NoError(t, err)
		assert.NotNil(t, res.Badges)
		assert.Empty(t, res.Badges)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		_, err := score.NewService(&fakeScoreRepo{readErr: errors.New("timeout")}, &fakeQuestionRepo{}).
			Badges(context.Background(), "bia")
		assert.ErrorIs(t, err, config.ErrStore)
	})
}
