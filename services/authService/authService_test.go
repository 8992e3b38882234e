package authService

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"parlayPickem/database"
	"parlayPickem/models"
	"parlayPickem/services/common"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock DB: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm over mock: %v", err)
	}
	return gormDB, mock
}

func strPtr(s string) *string { return &s }

func TestResolveUser(t *testing.T) {
	db := newTestDB(t)
	alice := models.User{Email: "alice@example.com"}
	if err := db.Create(&alice).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	tests := []struct {
		name     string
		session  *Session
		wantKind common.Kind
		wantID   string
	}{
		{
			name:    "resolves stored user by email",
			session: &Session{Email: strPtr("alice@example.com")},
			wantID:  alice.ID,
		},
		{
			name:     "nil session",
			session:  nil,
			wantKind: common.KindUnauthenticated,
		},
		{
			name:     "session without email",
			session:  &Session{},
			wantKind: common.KindUnauthenticated,
		},
		{
			name:     "session with empty email",
			session:  &Session{Email: strPtr("")},
			wantKind: common.KindUnauthenticated,
		},
		{
			name:     "unknown email",
			session:  &Session{Email: strPtr("nobody@example.com")},
			wantKind: common.KindUnknownUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := ResolveUser(db, tt.session)
			if tt.wantKind != "" {
				if err == nil {
					t.Fatalf("Expected error of kind %s, got nil", tt.wantKind)
				}
				if got := common.KindOf(err); got != tt.wantKind {
					t.Errorf("Expected kind %s, got %s", tt.wantKind, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if user.ID != tt.wantID {
				t.Errorf("Expected user %s, got %s", tt.wantID, user.ID)
			}
		})
	}
}

func TestResolveUser_StorageFault(t *testing.T) {
	db, mock := newMockDB(t)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnError(fmt.Errorf("connection reset"))

	_, err := ResolveUser(db, &Session{Email: strPtr("alice@example.com")})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if got := common.KindOf(err); got != common.KindStorageFault {
		t.Errorf("Expected StorageFault, got %s", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}
