package seed

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes a fixture set: which CSV files to load and whether the
// demo account should be created afterwards.
type Manifest struct {
	Name        string `yaml:"name"`
	Users       string `yaml:"users"`
	Messages    string `yaml:"messages"`
	Follows     string `yaml:"follows"`
	TestAccount bool   `yaml:"test_account"`
}

// LoadManifest parses a fixtures.yml file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// ApplyManifest loads the fixture set described by a fixtures.yml file.
// Relative CSV paths resolve against the manifest's directory.
func (s *Seeder) ApplyManifest(path string) error {
	m, err := LoadManifest(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)

	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	if m.Name != "" {
		log.Printf("Applying fixture set %q", m.Name)
	}

	if m.Users != "" {
		n, err := s.LoadUsersCSV(resolve(m.Users))
		if err != nil {
			return err
		}
		log.Printf("Seeded %d users", n)
	}
	if m.Messages != "" {
		n, err := s.LoadMessagesCSV(resolve(m.Messages))
		if err != nil {
			return err
		}
		log.Printf("Seeded %d messages", n)
	}
	if m.Follows != "" {
		n, err := s.LoadFollowsCSV(resolve(m.Follows))
		if err != nil {
			return err
		}
		log.Printf("Seeded %d follow edges", n)
	}

	if m.TestAccount {
		if _, err := s.CreateTestAccount(); err != nil {
			return err
		}
		log.Println("Seeded test account (username: testAccount, password: test12)")
	}

	return nil
}
