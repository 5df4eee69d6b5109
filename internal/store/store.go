// Package store provides YAML persistence for subscription records.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"fjacquet/subscan/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SubscriptionsFile is the on-disk document wrapping the subscription list.
type SubscriptionsFile struct {
	Subscriptions []models.Subscription `yaml:"subscriptions"`
}

// SubscriptionStore loads and saves subscription records from a YAML file.
type SubscriptionStore struct {
	Path string
}

// NewSubscriptionStore creates a store backed by the given file path.
func NewSubscriptionStore(path string) *SubscriptionStore {
	return &SubscriptionStore{Path: path}
}

// Load reads all subscriptions from the store file. A missing file is not an
// error; it yields an empty list.
func (s *SubscriptionStore) Load() ([]models.Subscription, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file_path", s.Path).Debug("Subscriptions file not found, starting empty")
			return nil, nil
		}
		return nil, fmt.Errorf("could not read subscriptions file: %w", err)
	}

	var file SubscriptionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not parse subscriptions file %s: %w", s.Path, err)
	}

	log.WithFields(logrus.Fields{
		"file_path": s.Path,
		"count":     len(file.Subscriptions),
	}).Debug("Loaded subscriptions")

	return file.Subscriptions, nil
}

// Save writes the subscriptions back to the store file, creating the parent
// directory if needed. The file is written to a temporary name first and
// renamed into place so a crash never leaves a half-written store.
func (s *SubscriptionStore) Save(subs []models.Subscription) error {
	data, err := yaml.Marshal(SubscriptionsFile{Subscriptions: subs})
	if err != nil {
		return fmt.Errorf("could not marshal subscriptions: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("could not create data directory %s: %w", dir, err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("could not write subscriptions file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("could not replace subscriptions file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file_path": s.Path,
		"count":     len(subs),
	}).Debug("Saved subscriptions")

	return nil
}
