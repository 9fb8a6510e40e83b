package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestResumeDeleteRemovesBothCollections(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewResumeService(db, nil)

	id := uuid.NewString()
	mock.ExpectQuery(`SELECT \* FROM "resumes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "educations" WHERE resume_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "experiences" WHERE resume_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "resumes" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res := svc.Delete(context.Background(), id)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Resume deleted successfully", res.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumeDeleteMissingRowReturnsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewResumeService(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "resumes" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	res := svc.Delete(context.Background(), uuid.NewString())
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
