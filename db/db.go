package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/jsphweid/chording/chord"
	"github.com/jsphweid/chording/model"
	"github.com/jsphweid/chording/util"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrSheetNotFound = errors.New("sheet not found")
	ErrEmptySheet    = errors.New("sheet needs a title and a body")
)

type Store struct {
	db *gorm.DB
}

// Open creates the database file and its directory when missing.
func Open(path string) (*Store, error) {
	if err := util.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := db.AutoMigrate(&model.Sheet{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Add(title, artist, key, body string) (model.Sheet, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(body) == "" {
		return model.Sheet{}, ErrEmptySheet
	}

	sheet := model.Sheet{
		ID:     uuid.New().String(),
		Title:  title,
		Artist: strings.TrimSpace(artist),
		Key:    strings.TrimSpace(key),
		Body:   body,
	}
	if err := s.db.Create(&sheet).Error; err != nil {
		return model.Sheet{}, fmt.Errorf("creating sheet: %w", err)
	}
	return sheet, nil
}

func (s *Store) Get(id string) (model.Sheet, error) {
	var sheet model.Sheet
	err := s.db.Where("id = ?", id).First(&sheet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Sheet{}, fmt.Errorf("%w: %v", ErrSheetNotFound, id)
	}
	if err != nil {
		return model.Sheet{}, fmt.Errorf("querying sheet: %w", err)
	}
	return sheet, nil
}

// GetTransposed returns the sheet with its body and key moved by semitones.
// The stored copy is never modified.
func (s *Store) GetTransposed(id string, semitones int) (model.Sheet, error) {
	sheet, err := s.Get(id)
	if err != nil {
		return model.Sheet{}, err
	}
	sheet.Body = chord.TransposeText(sheet.Body, semitones)
	if sheet.Key != "" {
		sheet.Key = chord.TransposeToken(sheet.Key, semitones)
	}
	return sheet, nil
}

// List returns sheets ordered by artist then title.
func (s *Store) List() ([]model.Sheet, error) {
	sheets := make([]model.Sheet, 0)
	if err := s.db.Order("artist, title").Find(&sheets).Error; err != nil {
		return nil, fmt.Errorf("listing sheets: %w", err)
	}
	return sheets, nil
}

func (s *Store) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&model.Sheet{})
	if res.Error != nil {
		return fmt.Errorf("deleting sheet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %v", ErrSheetNotFound, id)
	}
	return nil
}
