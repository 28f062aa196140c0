package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"warbler/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// GenerateOptions controls the size of a generated data set.
type GenerateOptions struct {
	NumUsers    int
	NumMessages int
	NumFollows  int
	NumLikes    int
}

// Generate populates the database with fake users, messages, follow edges,
// and likes. All generated users share the password "password123".
func (s *Seeder) Generate(opts GenerateOptions) error {
	log.Printf("Generating %d users and %d messages...", opts.NumUsers, opts.NumMessages)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make([]models.User, 0, opts.NumUsers)
	seen := make(map[string]struct{}, opts.NumUsers)
	for len(users) < opts.NumUsers {
		username := strings.ToLower(gofakeit.Username())
		if _, dup := seen[username]; dup {
			continue
		}
		seen[username] = struct{}{}
		users = append(users, models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
			Password: string(hashed),
			Bio:      gofakeit.Sentence(8),
			Location: fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		})
	}
	if err := s.db.CreateInBatches(&users, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert generated users: %w", err)
	}

	messages := make([]models.Message, 0, opts.NumMessages)
	for i := 0; i < opts.NumMessages; i++ {
		messages = append(messages, models.Message{
			Text:   truncateText(gofakeit.Sentence(rand.Intn(10)+3), models.MaxMessageLength),
			UserID: users[rand.Intn(len(users))].ID,
		})
	}
	if len(messages) > 0 {
		if err := s.db.CreateInBatches(&messages, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert generated messages: %w", err)
		}
	}

	for i := 0; i < opts.NumFollows; i++ {
		follower := users[rand.Intn(len(users))]
		followee := users[rand.Intn(len(users))]
		if follower.ID == followee.ID {
			continue
		}
		follow := models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error; err != nil {
			return fmt.Errorf("failed to insert generated follow: %w", err)
		}
	}

	for i := 0; i < opts.NumLikes && len(messages) > 0; i++ {
		like := models.Like{
			UserID:    users[rand.Intn(len(users))].ID,
			MessageID: messages[rand.Intn(len(messages))].ID,
		}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
			return fmt.Errorf("failed to insert generated like: %w", err)
		}
	}

	log.Println("Generation complete")
	return nil
}

// truncateText shortens s to at most max runes. The message length limit
// counts characters, so slicing by bytes could split a multibyte rune.
func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
