package models

import (
	"time"

	"gorm.io/gorm"

	"topiray/views/theme"
)

// Theme identifiers a user can persist as their preferred preset.
const (
	ThemeLight   = theme.PresetLight
	ThemeDark    = theme.PresetDark
	DefaultTheme = ThemeLight
)

// User represents an account of the demo host.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	AccountType  string `gorm:"type:varchar(32)"`
	Theme        string `gorm:"type:varchar(32);default:light"`

	EmailVerifiedAt   *time.Time
	VerificationToken string `gorm:"index"`

	ResetToken          string `gorm:"index"`
	ResetTokenExpiresAt *time.Time

	TwoFactorSecret  string
	TwoFactorEnabled bool
}

// EmailVerified reports whether the user confirmed their email address.
func (u *User) EmailVerified() bool {
	return u.EmailVerifiedAt != nil
}

// ValidTheme reports whether value names a registered theme preset.
func ValidTheme(value string) bool {
	return value != "" && theme.ValidPreset(value)
}

// NormalizeTheme returns the canonical preset name, or DefaultTheme when
// value is unknown.
func NormalizeTheme(value string) string {
	return theme.NormalizePreset(value)
}
