// services/lives.go — reference-data management for lives and missions.
package services

import (
	"errors"

	"life-missions-system/models"
	"life-missions-system/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
)

type LifeService struct {
	Store *store.Store
}

func NewLifeService(st *store.Store) *LifeService {
	return &LifeService{Store: st}
}

// GetLives lists every life track.
func (s *LifeService) GetLives(c *fiber.Ctx) error {
	lives, err := s.Store.Lives()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch lives"})
	}
	return c.JSON(lives)
}

// GetLifeBySlug fetches a single life by its URL slug.
func (s *LifeService) GetLifeBySlug(c *fiber.Ctx) error {
	life, err := s.Store.LifeBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "life not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}
	return c.JSON(life)
}

// GetLifeMissions lists a life's missions, optionally capped by ?max_level=.
func (s *LifeService) GetLifeMissions(c *fiber.Ctx) error {
	life, err := s.Store.LifeBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "life not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	maxLevel := c.QueryInt("max_level", 0)
	missions, err := s.Store.MissionsForLife(life.ID, maxLevel)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch missions"})
	}
	return c.JSON(missions)
}

// CreateLife creates a life track; the slug is derived from the name.
func (s *LifeService) CreateLife(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	life := &models.Life{Name: req.Name, Slug: slug.Make(req.Name)}
	if err := s.Store.CreateLife(life); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create life"})
	}
	return c.Status(fiber.StatusCreated).JSON(life)
}

// CreateMission creates a mission inside an existing life.
func (s *LifeService) CreateMission(c *fiber.Ctx) error {
	var req struct {
		LifeID      uint   `json:"life_id"`
		LevelNumber int    `json:"level_number"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Points      int    `json:"points"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Title == "" || req.LifeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "life_id and title are required"})
	}

	if _, err := s.Store.LifeByID(req.LifeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "life not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	mission := &models.Mission{
		LifeID:      req.LifeID,
		LevelNumber: req.LevelNumber,
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		Points:      req.Points,
	}
	if mission.LevelNumber < 1 {
		mission.LevelNumber = 1
	}
	if mission.Points <= 0 {
		mission.Points = 10
	}
	if err := s.Store.CreateMission(mission); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create mission"})
	}
	return c.Status(fiber.StatusCreated).JSON(mission)
}
