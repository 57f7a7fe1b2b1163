package score

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/h2owise/internal/config"
	"github.com/saulo-duarte/h2owise/internal/question"
	"github.com/sirupsen/logrus"
)

const LeaderboardSize = 10

type ScoreService interface {
	Submit(ctx context.Context, dto SubmitDTO) (*SubmitResponse, error)
	Leaderboard(ctx context.Context) ([]ScoreRecord, error)
	Badges(ctx context.Context, username string) (*BadgesResponse, error)
}

type scoreService struct {
	repo         ScoreRepository
	questionRepo question.QuestionRepository
}

func NewService(repo ScoreRepository, questionRepo question.QuestionRepository) ScoreService {
	return &scoreService{
		repo:         repo,
		questionRepo: questionRepo,
	}
}

func (s *scoreService) Submit(ctx context.Context, dto SubmitDTO) (*SubmitResponse, error) {
	log := config.WithContext(ctx)

	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load questions for scoring")
		return nil, fmt.Errorf("%w: %v", config.ErrStore, err)
	}

	total := Score(questions, dto.Answers)
	record := &ScoreRecord{
		ID:       uuid.New(),
		Username: dto.ResolvedUsername(),
		Score:    total,
		Badge:    AssignBadge(total),
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		log.WithError(err).WithField("username", record.Username).Error("Failed to save score")
		return nil, fmt.Errorf("%w: %v", config.ErrStore, err)
	}

	log.WithFields(logrus.Fields{
		"username": record.Username,
		"score":    record.Score,
		"badge":    record.Badge,
	}).Info("Submission scored")

	return &SubmitResponse{Score: record.Score, Badge: record.Badge}, nil
}

func (s *scoreService) Leaderboard(ctx context.Context) ([]ScoreRecord, error) {
	records, err := s.repo.Top(ctx, LeaderboardSize)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load leaderboard")
		return nil, fmt.Errorf("%w: %v", config.ErrStore, err)
	}
	if records == nil {
		records = []ScoreRecord{}
	}
	return records, nil
}

func (s *scoreService) Badges(ctx context.Context, username string) (*BadgesResponse, error) {
	records, err := s.repo.ListByUsername(ctx, username)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("username", username).Error("Failed to load badges")
		return nil, fmt.Errorf("%w: %v", config.ErrStore, err)
	}

	return &BadgesResponse{
		Username: username,
		Badges:   distinctBadges(records),
	}, nil
}

// distinctBadges keeps the first occurrence of each badge.
func distinctBadges(records []ScoreRecord) []Badge {
	seen := make(map[Badge]struct{}, 3)
	badges := []Badge{}
	for _, r := range records {
		if _, ok := seen[r.Badge]; ok {
			continue
		}
		seen[r.Badge] = struct{}{}
		badges = append(badges, r.Badge)
	}
	return badges
}
