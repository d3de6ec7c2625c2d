// store wraps the injected *gorm.DB with typed per-entity operations so the
// mission engine never sees GORM error values directly.
package store

import (
	"errors"
	"fmt"

	"life-missions-system/models"

	"gorm.io/gorm"
)

// ErrNotFound is the explicit "no such record" signal. Callers translate it
// into their own domain errors.
var ErrNotFound = errors.New("record not found")

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// AutoMigrate creates/updates the schema for every entity this service owns.
func (s *Store) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&models.User{},
		&models.Life{},
		&models.Mission{},
		&models.UserLifeProgress{},
		&models.UserProgress{},
		&models.UserReward{},
	)
}

// Transaction runs fn against a transaction-scoped Store. Either every write
// inside fn commits, or none do.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- Lives ---

func (s *Store) CreateLife(life *models.Life) error {
	return s.DB.Create(life).Error
}

func (s *Store) Lives() ([]models.Life, error) {
	var lives []models.Life
	err := s.DB.Order("id ASC").Find(&lives).Error
	return lives, err
}

func (s *Store) LifeByID(id uint) (*models.Life, error) {
	var life models.Life
	if err := s.DB.First(&life, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &life, nil
}

func (s *Store) LifeBySlug(slug string) (*models.Life, error) {
	var life models.Life
	if err := s.DB.First(&life, "slug = ?", slug).Error; err != nil {
		return nil, translate(err)
	}
	return &life, nil
}

// --- Missions ---

func (s *Store) CreateMission(mission *models.Mission) error {
	return s.DB.Create(mission).Error
}

func (s *Store) MissionByID(id uint) (*models.Mission, error) {
	var mission models.Mission
	if err := s.DB.First(&mission, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &mission, nil
}

// MissionsForLevel returns every mission whose level gate is at or below
// maxLevel, across all lives.
func (s *Store) MissionsForLevel(maxLevel int) ([]models.Mission, error) {
	var missions []models.Mission
	err := s.DB.Where("level_number <= ?", maxLevel).
		Order("life_id ASC, level_number ASC, id ASC").
		Find(&missions).Error
	return missions, err
}

// MissionsForLife returns a life's missions up to maxLevel (0 = no ceiling).
func (s *Store) MissionsForLife(lifeID uint, maxLevel int) ([]models.Mission, error) {
	q := s.DB.Where("life_id = ?", lifeID)
	if maxLevel > 0 {
		q = q.Where("level_number <= ?", maxLevel)
	}
	var missions []models.Mission
	err := q.Order("level_number ASC, id ASC").Find(&missions).Error
	return missions, err
}

// --- Life progress ---

func (s *Store) CreateLifeProgress(prog *models.UserLifeProgress) error {
	return s.DB.Create(prog).Error
}

func (s *Store) LifeProgress(userID, lifeID uint) (*models.UserLifeProgress, error) {
	var prog models.UserLifeProgress
	if err := s.DB.First(&prog, "user_id = ? AND life_id = ?", userID, lifeID).Error; err != nil {
		return nil, translate(err)
	}
	return &prog, nil
}

// FirstLifeProgress returns the user's oldest progress row, any life.
func (s *Store) FirstLifeProgress(userID uint) (*models.UserLifeProgress, error) {
	var prog models.UserLifeProgress
	if err := s.DB.Order("id ASC").First(&prog, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &prog, nil
}

func (s *Store) AllLifeProgress() ([]models.UserLifeProgress, error) {
	var progs []models.UserLifeProgress
	err := s.DB.Order("id ASC").Find(&progs).Error
	return progs, err
}

// AddXP increments a progress row's XP at the SQL level so concurrent
// completions in the same life cannot lose updates.
func (s *Store) AddXP(progressID uint, points int) error {
	res := s.DB.Model(&models.UserLifeProgress{}).
		Where("id = ?", progressID).
		UpdateColumn("xp", gorm.Expr("xp + ?", points))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("add xp to progress %d: %w", progressID, ErrNotFound)
	}
	return nil
}

func (s *Store) SetLevel(progressID uint, level int) error {
	return s.DB.Model(&models.UserLifeProgress{}).
		Where("id = ?", progressID).
		UpdateColumn("level", level).Error
}

func (s *Store) LifeProgressByID(id uint) (*models.UserLifeProgress, error) {
	var prog models.UserLifeProgress
	if err := s.DB.First(&prog, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &prog, nil
}

// --- Completions ---

func (s *Store) Completion(userID, missionID uint) (*models.UserProgress, error) {
	var completion models.UserProgress
	if err := s.DB.First(&completion, "user_id = ? AND mission_id = ?", userID, missionID).Error; err != nil {
		return nil, translate(err)
	}
	return &completion, nil
}

func (s *Store) CreateCompletion(completion *models.UserProgress) error {
	return s.DB.Create(completion).Error
}

// --- Rewards ---

func (s *Store) CreateReward(reward *models.UserReward) error {
	return s.DB.Create(reward).Error
}

// RewardsForUser returns the user's rewards in insertion order.
func (s *Store) RewardsForUser(userID uint) ([]models.UserReward, error) {
	var rewards []models.UserReward
	err := s.DB.Where("user_id = ?", userID).Order("id ASC").Find(&rewards).Error
	return rewards, err
}
