package repositories

import (
	"encoding/json"
	"log"
	"os"

	"mini-pdv/models"
)

// CartStorage persists the cart as a single JSON snapshot file so the
// cart survives restarts. Every mutation overwrites the whole file.
type CartStorage struct {
	path string
}

func NewCartStorage(path string) *CartStorage {
	return &CartStorage{path: path}
}

// Load reads the snapshot. A missing or malformed file means an empty
// cart; that is not an error the user hears about.
func (s *CartStorage) Load() []models.CartItem {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.CartItem{}
	}

	items := []models.CartItem{}
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Discarding unreadable cart snapshot %s: %v", s.path, err)
		return []models.CartItem{}
	}
	return items
}

// Save overwrites the snapshot with the current cart contents.
func (s *CartStorage) Save(items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Clear removes the snapshot entirely.
func (s *CartStorage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists reports whether a snapshot file is present.
func (s *CartStorage) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
