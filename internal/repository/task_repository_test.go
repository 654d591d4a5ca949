package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestDailyCount_NoCounterRowMeansZero(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `daily_post_counts`").
		WillReturnRows(sqlmock.NewRows([]string{"poster_id", "date", "count"}))

	count, err := repo.DailyCount(7, "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDailyCount_ReturnsCounterValue(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `daily_post_counts`").
		WillReturnRows(sqlmock.NewRows([]string{"poster_id", "date", "count"}).
			AddRow(7, "2026-08-30", 3))

	count, err := repo.DailyCount(7, "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The quota check must lock the counter row and refuse without inserting.
func TestCreateWithDailyQuota_LimitReachedRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `daily_post_counts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `daily_post_counts` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"poster_id", "date", "count"}).
			AddRow(7, "2026-08-30", 5))
	mock.ExpectRollback()

	task := &models.Task{Title: "Too late", Status: models.TaskStatusOpen, PostedByID: 7}
	err := repo.CreateWithDailyQuota(task, 5, "2026-08-30")
	assert.ErrorIs(t, err, ErrDailyLimitReached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A guarded update that matches no open row must not claim the task.
func TestAccept_LoserGetsTaskNotOpen(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `users` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery("SELECT count(.+) FROM `tasks`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("UPDATE `tasks` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM `tasks`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(3, string(models.TaskStatusAccepted)))
	mock.ExpectRollback()

	err := repo.Accept(3, 9)
	assert.ErrorIs(t, err, ErrTaskNotOpen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A volunteer who already holds an accepted task is refused before the task
// row is touched.
func TestAccept_BusyVolunteerRefused(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `users` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectQuery("SELECT count(.+) FROM `tasks`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.Accept(3, 9)
	assert.ErrorIs(t, err, ErrVolunteerBusy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCities_DistinctSorted(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery("SELECT DISTINCT (.+) FROM `tasks`").
		WillReturnRows(sqlmock.NewRows([]string{"city"}).
			AddRow("Shelbyville").
			AddRow("Springfield"))

	cities, err := repo.Cities()
	require.NoError(t, err)
	assert.Equal(t, []string{"Shelbyville", "Springfield"}, cities)
	assert.NoError(t, mock.ExpectationsWereMet())
}
