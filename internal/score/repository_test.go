package score_test

import (
	"context"
	"testing"

	"github.com/saulo-duarte/h2owise/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type capturedQuery struct {
	sql  string
	vars []interface{}
}

// newDryRunDB builds SQL without ever opening a connection.
func newDryRunDB(t *testing.T, captured *capturedQuery) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=h2owise dbname=h2owise sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	err = db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		captured.sql = tx.Statement.SQL.String()
		captured.vars = tx.Statement.Vars
	})
	require.NoError(t, err)
	return db
}

func TestScoreRepositoryTop(t *testing.T) {
	var q capturedQuery
	repo := score.NewRepository(newDryRunDB(t, &q))

	_, err := repo.Top(context.Background(), score.LeaderboardSize)
	require.NoError(t, err)

	assert.Contains(t, q.sql, `FROM "user_scores"`)
	assert.Contains(t, q.sql, "ORDER BY score DESC,created_at ASC LIMIT $1")
	assert.Equal(t, []interface{}{score.LeaderboardSize}, q.vars)
}

func TestScoreRepositoryListByUsername(t *testing.T) {
	var q capturedQuery
	repo := score.NewRepository(newDryRunDB(t, &q))

	_, err := repo.ListByUsername(context.Background(), "bia")
	require.NoError(t, err)

	assert.Contains(t, q.sql, `FROM "user_scores" WHERE username = $1 ORDER BY created_at ASC`)
	assert.Equal(t, []interface{}{"bia"}, q.vars)
}
