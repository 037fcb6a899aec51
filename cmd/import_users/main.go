package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"topiray/internal/config"
	"topiray/internal/db"
	"topiray/models"
	"topiray/views/auth"
)

// Column headers understood by the importer. Only Email is required.
const (
	columnEmail       = "Email"
	columnName        = "Name"
	columnPassword    = "Password"
	columnAccountType = "Account Type"
	columnTheme       = "Theme"
	columnVerified    = "Verified"
)

func main() {
	csvPath := "accounts.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	if err := run(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(csvPath string) error {
	if strings.TrimSpace(csvPath) == "" {
		return fmt.Errorf("csv path must not be empty")
	}

	if _, err := os.Stat(csvPath); err != nil {
		return fmt.Errorf("locate csv: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(database); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	records, err := readCSV(csvPath)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	created, updated, err := importRecords(database, records)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Imported %d accounts from %s (%d created, %d updated)\n", created+updated, filepath.Base(csvPath), created, updated)
	return nil
}

// importRecords upserts one account per record, keyed by email. Each record
// runs in its own transaction; the first failure stops the import.
func importRecords(database *gorm.DB, records []map[string]string) (created, updated int, err error) {
	for idx, record := range records {
		var isNew bool
		if err := database.Transaction(func(tx *gorm.DB) error {
			user, password, err := buildUser(record)
			if err != nil {
				return err
			}

			var existing models.User
			err = tx.Where("lower(email) = ?", user.Email).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if password == "" {
					return fmt.Errorf("password is required for new account %q", user.Email)
				}
				if user.PasswordHash, err = hashPassword(password); err != nil {
					return err
				}
				isNew = true
				if err := tx.Create(&user).Error; err != nil {
					return fmt.Errorf("create account %q: %w", user.Email, err)
				}
				return nil
			case err != nil:
				return fmt.Errorf("find account %q: %w", user.Email, err)
			}

			updates := map[string]any{
				"name":         user.Name,
				"account_type": user.AccountType,
				"theme":        user.Theme,
			}
			if password != "" {
				hash, err := hashPassword(password)
				if err != nil {
					return err
				}
				updates["password_hash"] = hash
			}
			if user.EmailVerifiedAt != nil && existing.EmailVerifiedAt == nil {
				updates["email_verified_at"] = user.EmailVerifiedAt
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return fmt.Errorf("update account %q: %w", user.Email, err)
			}
			return nil
		}); err != nil {
			return created, updated, fmt.Errorf("record %d (%s): %w", idx+1, record[columnEmail], err)
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

func buildUser(row map[string]string) (models.User, string, error) {
	email, err := auth.ParseEmail(url.Values{auth.FieldEmail: {row[columnEmail]}})
	if err != nil {
		return models.User{}, "", err
	}

	password := row[columnPassword]
	if password != "" && len(password) < auth.MinPasswordLength {
		return models.User{}, "", fmt.Errorf("password for %q must be at least %d characters", email, auth.MinPasswordLength)
	}

	accountType, err := resolveAccountType(row[columnAccountType])
	if err != nil {
		return models.User{}, "", err
	}

	themeName := normalizeValue(row[columnTheme])
	if themeName == "" {
		themeName = models.DefaultTheme
	}
	if !models.ValidTheme(themeName) {
		return models.User{}, "", fmt.Errorf("unknown theme %q", themeName)
	}

	user := models.User{
		Email:       strings.ToLower(email),
		Name:        normalizeValue(row[columnName]),
		AccountType: accountType,
		Theme:       models.NormalizeTheme(themeName),
	}
	if parseBool(row[columnVerified]) {
		now := time.Now().UTC()
		user.EmailVerifiedAt = &now
	}
	return user, password, nil
}

func resolveAccountType(value string) (string, error) {
	value = normalizeValue(value)
	types := auth.DefaultAccountTypes()
	if value == "" {
		return types[0].Label, nil
	}
	for _, t := range types {
		if strings.EqualFold(t.Label, value) {
			return t.Label, nil
		}
	}
	return "", fmt.Errorf("unknown account type %q", value)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("csv is empty")
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		record := make(map[string]string, len(header))
		for idx, key := range header {
			if idx >= len(row) {
				continue
			}
			record[strings.TrimSpace(key)] = strings.TrimSpace(row[idx])
		}
		records = append(records, record)
	}

	return records, nil
}

func normalizeValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "N/A") {
		return ""
	}
	return value
}

func parseBool(value string) bool {
	switch strings.ToLower(normalizeValue(value)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
