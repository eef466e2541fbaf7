package chat

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	chatmodels "smartadmin_backend/internal/models/chat"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

// UPDATE затрагивает только непрочитанные сообщения указанного отправителя
// в своей комнате: предикат room_id + sender_type + is_read = false
func TestMessageRepository_MarkRead_Predicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectExec(`UPDATE "chat_messages" SET .+ WHERE room_id = \$\d+ AND sender_type = \$\d+ AND is_read = \$\d+`).
		WithArgs(true, sqlmock.AnyArg(), sqlmock.AnyArg(), "room-a", "USER", false).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.MarkRead("room-a", chatmodels.SenderUser)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Повторный вызов не находит строк и не возвращает ошибку
func TestMessageRepository_MarkRead_Idempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectExec(`UPDATE "chat_messages" SET .+ WHERE room_id = \$\d+ AND sender_type = \$\d+ AND is_read = \$\d+`).
		WithArgs(true, sqlmock.AnyArg(), sqlmock.AnyArg(), "room-a", "USER", false).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "chat_messages" SET .+ WHERE room_id = \$\d+ AND sender_type = \$\d+ AND is_read = \$\d+`).
		WithArgs(true, sqlmock.AnyArg(), sqlmock.AnyArg(), "room-a", "USER", false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.MarkRead("room-a", chatmodels.SenderUser))
	require.NoError(t, repo.MarkRead("room-a", chatmodels.SenderUser))
	assert.NoError(t, mock.ExpectationsWereMet())
}
