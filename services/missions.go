package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"life-missions-system/models"
	"life-missions-system/store"

	"gorm.io/gorm"
)

// Domain errors, translated to HTTP statuses at the handler boundary.
var (
	ErrMissionNotFound     = errors.New("mission not found")
	ErrProgressNotFound    = errors.New("progress not found")
	ErrNoMissionsAvailable = errors.New("no missions available for your level")
	ErrAlreadyCompleted    = errors.New("mission already completed")
)

const NoNewReward = "No new reward"

type MissionService struct {
	Store *store.Store
}

func NewMissionService(st *store.Store) *MissionService {
	return &MissionService{Store: st}
}

// CompletionResult is what a successful CompleteMission reports back.
type CompletionResult struct {
	NewXP     int
	NewLevel  int
	LeveledUp bool
	Reward    string // NoNewReward when the completion granted nothing
}

// AvailableMissionsResult lists every mission the user's level unlocks.
type AvailableMissionsResult struct {
	UserID   uint
	Level    int
	Missions []models.Mission
}

// Profile summarizes a user's progress in their life track.
type Profile struct {
	UserID          uint
	LifeID          uint
	XP              int
	Level           int
	ProgressPercent int
}

// AvailableMissions returns all missions gated at or below the user's
// current level. Missions already completed are not filtered out; level
// gating is the availability policy.
func (s *MissionService) AvailableMissions(userID uint) (*AvailableMissionsResult, error) {
	prog, err := s.Store.FirstLifeProgress(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("fetch progress for user %d: %w", userID, err)
	}

	level := LevelForXP(prog.XP)
	missions, err := s.Store.MissionsForLevel(level)
	if err != nil {
		return nil, fmt.Errorf("fetch missions for level %d: %w", level, err)
	}
	if len(missions) == 0 {
		return nil, ErrNoMissionsAvailable
	}

	return &AvailableMissionsResult{UserID: userID, Level: level, Missions: missions}, nil
}

// CompleteMission marks a mission done for a user and applies its points.
// The whole sequence runs in one transaction: progress update, reward grant
// and completion record commit together or not at all, so a failed call can
// never leave XP applied without the completion recorded.
func (s *MissionService) CompleteMission(userID, missionID uint, photoURL *string) (*CompletionResult, error) {
	var result *CompletionResult
	err := s.Store.Transaction(func(tx *store.Store) error {
		mission, err := tx.MissionByID(missionID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrMissionNotFound
			}
			return err
		}

		if _, err := tx.Completion(userID, missionID); err == nil {
			return ErrAlreadyCompleted
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		prog, err := tx.LifeProgress(userID, mission.LifeID)
		if errors.Is(err, store.ErrNotFound) {
			prog = &models.UserLifeProgress{UserID: userID, LifeID: mission.LifeID, XP: 0, Level: 1}
			if err := tx.CreateLifeProgress(prog); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		oldLevel := LevelForXP(prog.XP)

		if err := tx.AddXP(prog.ID, mission.Points); err != nil {
			return err
		}
		prog, err = tx.LifeProgressByID(prog.ID)
		if err != nil {
			return err
		}
		newLevel := LevelForXP(prog.XP)
		if err := tx.SetLevel(prog.ID, newLevel); err != nil {
			return err
		}

		reward := NoNewReward
		if newLevel > oldLevel {
			if name, ok := RewardForLevel(newLevel); ok {
				if err := tx.CreateReward(&models.UserReward{
					UserID:     userID,
					RewardName: name,
					RewardedAt: time.Now(),
				}); err != nil {
					return err
				}
				reward = name
			}
		}

		completion := &models.UserProgress{
			UserID:       userID,
			MissionID:    missionID,
			Completed:    true,
			CompletedAt:  time.Now(),
			UserPhotoURL: photoURL,
		}
		if err := tx.CreateCompletion(completion); err != nil {
			// A concurrent call won the race on the (user, mission) unique
			// index; roll everything back and report the conflict.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyCompleted
			}
			return err
		}

		result = &CompletionResult{
			NewXP:     prog.XP,
			NewLevel:  newLevel,
			LeveledUp: newLevel > oldLevel,
			Reward:    reward,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("mission completed",
		"user_id", userID,
		"mission_id", missionID,
		"new_xp", result.NewXP,
		"new_level", result.NewLevel,
		"leveled_up", result.LeveledUp,
	)
	return result, nil
}

// UserProfile returns the user's life, XP, derived level and how far along
// they are toward the next level.
func (s *MissionService) UserProfile(userID uint) (*Profile, error) {
	prog, err := s.Store.FirstLifeProgress(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, fmt.Errorf("fetch progress for user %d: %w", userID, err)
	}

	level := LevelForXP(prog.XP)
	return &Profile{
		UserID:          userID,
		LifeID:          prog.LifeID,
		XP:              prog.XP,
		Level:           level,
		ProgressPercent: ProgressPercent(prog.XP, level),
	}, nil
}

// UserRewards returns every reward granted to the user, oldest first.
func (s *MissionService) UserRewards(userID uint) ([]models.UserReward, error) {
	return s.Store.RewardsForUser(userID)
}
