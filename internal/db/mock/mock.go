package mock

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "topiray/internal/log"
	"topiray/models"
)

// Demo credentials seeded into the mock database.
const (
	DemoEmail    = "ada@topiray.dev"
	DemoPassword = "lovelace-1843"
)

// New returns an in-memory sqlite database seeded with demo accounts.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:topiray-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("email = ?", DemoEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		applog.Debug(ctx, "mock database already seeded")
		return nil
	}

	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	verified := time.Now().UTC()

	users := []*models.User{
		{
			Name:            "Ada Lovelace",
			Email:           DemoEmail,
			PasswordHash:    string(password),
			AccountType:     "Individual",
			Theme:           models.ThemeLight,
			EmailVerifiedAt: &verified,
		},
		{
			Name:         "Analytical Engines Ltd",
			Email:        "ops@analytical.dev",
			PasswordHash: string(password),
			AccountType:  "Business",
			Theme:        models.ThemeDark,
		},
	}
	for _, user := range users {
		if err := db.WithContext(ctx).Create(user).Error; err != nil {
			return err
		}
	}
	return nil
}
