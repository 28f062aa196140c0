// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"warbler/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const insertBatchSize = 500

// Seeder loads fixture data into the database.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder returns a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all rows from the application tables. Children first so
// foreign keys never dangle mid-way.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"likes", "followers_followee", "messages", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// LoadCSVDir loads users.csv, messages.csv, and follows.csv from dir.
func (s *Seeder) LoadCSVDir(dir string) error {
	users, err := s.LoadUsersCSV(filepath.Join(dir, "users.csv"))
	if err != nil {
		return err
	}
	log.Printf("Seeded %d users", users)

	messages, err := s.LoadMessagesCSV(filepath.Join(dir, "messages.csv"))
	if err != nil {
		return err
	}
	log.Printf("Seeded %d messages", messages)

	follows, err := s.LoadFollowsCSV(filepath.Join(dir, "follows.csv"))
	if err != nil {
		return err
	}
	log.Printf("Seeded %d follow edges", follows)

	return nil
}

// LoadUsersCSV bulk-inserts users from a CSV file. Password values are
// expected to be pre-hashed in the fixture.
func (s *Seeder) LoadUsersCSV(path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		user := models.User{
			Username:       row["username"],
			Email:          row["email"],
			Password:       row["password"],
			ImageURL:       row["image_url"],
			HeaderImageURL: row["header_image_url"],
			Bio:            row["bio"],
			Location:       row["location"],
		}
		if id, err := strconv.ParseUint(row["id"], 10, 64); err == nil {
			user.ID = uint(id)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return 0, nil
	}
	if err := s.db.CreateInBatches(&users, insertBatchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to insert users from %s: %w", path, err)
	}
	return len(users), nil
}

// LoadMessagesCSV bulk-inserts messages from a CSV file.
func (s *Seeder) LoadMessagesCSV(path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	messages := make([]models.Message, 0, len(rows))
	for _, row := range rows {
		userID, err := strconv.ParseUint(row["user_id"], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid user_id %q in %s: %w", row["user_id"], path, err)
		}
		message := models.Message{
			Text:      row["text"],
			UserID:    uint(userID),
			Timestamp: parseTimestamp(row["timestamp"]),
		}
		if id, err := strconv.ParseUint(row["id"], 10, 64); err == nil {
			message.ID = uint(id)
		}
		messages = append(messages, message)
	}
	if len(messages) == 0 {
		return 0, nil
	}
	if err := s.db.CreateInBatches(&messages, insertBatchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to insert messages from %s: %w", path, err)
	}
	return len(messages), nil
}

// LoadFollowsCSV bulk-inserts follow edges from a CSV file.
func (s *Seeder) LoadFollowsCSV(path string) (int, error) {
	rows, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	follows := make([]models.Follow, 0, len(rows))
	for _, row := range rows {
		followerID, err := strconv.ParseUint(row["follower_id"], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid follower_id %q in %s: %w", row["follower_id"], path, err)
		}
		followeeID, err := strconv.ParseUint(row["followee_id"], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid followee_id %q in %s: %w", row["followee_id"], path, err)
		}
		follows = append(follows, models.Follow{
			FollowerID: uint(followerID),
			FolloweeID: uint(followeeID),
		})
	}
	if len(follows) == 0 {
		return 0, nil
	}
	if err := s.db.CreateInBatches(&follows, insertBatchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to insert follows from %s: %w", path, err)
	}
	return len(follows), nil
}

// CreateTestAccount inserts the well-known demo login used by integration
// checks and local development.
func (s *Seeder) CreateTestAccount() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("test12"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: "testAccount",
		Email:    "test@test.com",
		Password: string(hashed),
		ImageURL: "https://amp.businessinsider.com/images/5899ffcf6e09a897008b5c04-750-750.jpg",
		Bio:      "Bio for testAccount so good",
		Location: "San Francisco, CA",
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create test account: %w", err)
	}
	return user, nil
}

// readCSV reads a header-keyed CSV file into a slice of row maps.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.ToLower(header[i]))
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, field := range record {
			if i < len(header) {
				row[header[i]] = strings.TrimSpace(field)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseTimestamp accepts the formats seen in message fixtures, falling back
// to now.
func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Now()
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05.999999",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}
