package repository

import (
	"testing"

	"rexsphere/internal/domain/ask/model"
	feedmodel "rexsphere/internal/domain/feed/model"
	"rexsphere/internal/pkg/enums"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, AskRepository) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return mock, NewAskRepository(gdb)
}

func TestCreateAskWithFeed(t *testing.T) {
	t.Run("Ask and feed snapshot share one transaction", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "asks"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery(`INSERT INTO "feeds"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		ask := &model.Ask{UserID: 1, Category: enums.CategoryMusic, Question: "q"}
		entry := &feedmodel.Feed{UserID: 1, Category: enums.CategoryMusic, Type: enums.PostTypeAsk, Content: "q"}

		err := repo.Create(ask, entry)

		assert.NoError(t, err)
		// 快照回填帖子 ID
		assert.Equal(t, uint(7), entry.PostID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Feed insert failure rolls the ask back", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "asks"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery(`INSERT INTO "feeds"`).
			WillReturnError(gorm.ErrInvalidData)
		mock.ExpectRollback()

		ask := &model.Ask{UserID: 1, Category: enums.CategoryMusic, Question: "q"}
		entry := &feedmodel.Feed{UserID: 1, Category: enums.CategoryMusic, Type: enums.PostTypeAsk, Content: "q"}

		err := repo.Create(ask, entry)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteAskCascade(t *testing.T) {
	t.Run("Delete removes votes and attached recs", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "votes" WHERE ask_id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectQuery(`SELECT "id" FROM "recs" WHERE ask_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21).AddRow(22))
		mock.ExpectExec(`DELETE FROM "votes" WHERE rec_id IN \(\$1,\$2\)`).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM "recs" WHERE id IN \(\$1,\$2\)`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "asks" WHERE "asks"\."id" = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(10)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ask without recs skips the rec cleanup", func(t *testing.T) {
		mock, repo := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "votes" WHERE ask_id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT "id" FROM "recs" WHERE ask_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec(`DELETE FROM "asks" WHERE "asks"\."id" = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(10)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
