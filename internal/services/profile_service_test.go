package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devfolio/backend/internal/models"
)

// newMockDB wires gorm onto a sqlmock connection so service tests can
// script the SQL conversation without a live database.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestProfileDeleteQueuesEveryImage(t *testing.T) {
	db, mock := newMockDB(t)
	store := &fakeStore{prefix: testPrefix}
	svc := NewProfileService(db, nil, store)

	id := uuid.NewString()
	profileRows := sqlmock.NewRows([]string{
		"id", "primary_image", "secondary_image", "meta_image", "open_graph_image", "twitter_image",
	}).AddRow(
		id,
		testPrefix+"primary.png",
		testPrefix+"secondary.png",
		"",
		"https://elsewhere.example.com/og.png",
		testPrefix+"twitter.png",
	)
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).WillReturnRows(profileRows)
	mock.ExpectQuery(`SELECT \* FROM "social_links"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id"}))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "social_links" WHERE profile_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "profiles" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res := svc.Delete(context.Background(), id)
	require.Equal(t, http.StatusOK, res.Status)

	// empty and foreign-host URLs stay out of the batch
	require.Len(t, store.removed, 1)
	assert.ElementsMatch(t, []string{"primary.png", "secondary.png", "twitter.png"}, store.removed[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileDeleteMissingRowLeavesStorageAlone(t *testing.T) {
	db, mock := newMockDB(t)
	store := &fakeStore{prefix: testPrefix}
	svc := NewProfileService(db, nil, store)

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	res := svc.Delete(context.Background(), uuid.NewString())
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Empty(t, store.removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileUpdateReturnsRequestedRow(t *testing.T) {
	db, mock := newMockDB(t)
	store := &fakeStore{prefix: testPrefix}
	svc := NewProfileService(db, nil, store)

	id := uuid.NewString()
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id, "Old Name"))
	mock.ExpectQuery(`SELECT \* FROM "social_links"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id"}))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profiles" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "social_links" WHERE profile_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// the reload must go through the updated id, not an unordered scan
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id, "New Name"))
	mock.ExpectQuery(`SELECT \* FROM "social_links"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id"}))

	res := svc.Update(context.Background(), id, models.ProfileInput{Name: "New Name"})
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Profile updated successfully", res.Message)

	updated, ok := res.Data.(models.Profile)
	require.True(t, ok)
	assert.Equal(t, id, updated.ID.String())
	assert.Equal(t, "New Name", updated.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
