// handlers/mission_routes.go
package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"life-missions-system/services"
	"life-missions-system/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupMissionRoutes wires the user-facing progression endpoints onto the
// mission engine. Domain errors are translated to statuses here; anything
// else falls through to the app error handler.
func SetupMissionRoutes(app *fiber.App, missionService *services.MissionService) {
	app.Get("/users/:user_id/available_missions", func(c *fiber.Ctx) error {
		userID, err := parseID(c, "user_id")
		if err != nil {
			return err
		}

		result, err := missionService.AvailableMissions(userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProgressNotFound),
				errors.Is(err, services.ErrNoMissionsAvailable):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
			default:
				return err
			}
		}

		titles := make([]string, len(result.Missions))
		for i, m := range result.Missions {
			titles[i] = m.Title
		}
		return c.JSON(fiber.Map{
			"user_id":  result.UserID,
			"level":    result.Level,
			"missions": titles,
		})
	})

	app.Get("/users/:user_id/profile", func(c *fiber.Ctx) error {
		userID, err := parseID(c, "user_id")
		if err != nil {
			return err
		}

		profile, err := missionService.UserProfile(userID)
		if err != nil {
			if errors.Is(err, services.ErrProgressNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
			}
			return err
		}

		return c.JSON(fiber.Map{
			"user_id":                profile.UserID,
			"life_id":                profile.LifeID,
			"xp":                     profile.XP,
			"level_number":           profile.Level,
			"progress_to_next_level": fmt.Sprintf("%d%%", profile.ProgressPercent),
		})
	})

	app.Post("/users/:user_id/complete_mission/:mission_id", func(c *fiber.Ctx) error {
		userID, err := parseID(c, "user_id")
		if err != nil {
			return err
		}
		missionID, err := parseID(c, "mission_id")
		if err != nil {
			return err
		}

		var photoURL *string
		if q := c.Query("user_photo_url"); q != "" {
			photoURL = &q
		}
		if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
			url, err := utils.StoreMissionPhoto(c.UserContext(), fileHeader)
			if err != nil {
				return fmt.Errorf("store mission photo: %w", err)
			}
			photoURL = &url
		}

		result, err := missionService.CompleteMission(userID, missionID, photoURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissionNotFound):
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
			case errors.Is(err, services.ErrAlreadyCompleted):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			default:
				return err
			}
		}

		return c.JSON(fiber.Map{
			"message":   "Mission completed! XP updated.",
			"new_xp":    result.NewXP,
			"new_level": result.NewLevel,
			"reward":    result.Reward,
		})
	})

	app.Get("/users/:user_id/rewards", func(c *fiber.Ctx) error {
		userID, err := parseID(c, "user_id")
		if err != nil {
			return err
		}

		rewards, err := missionService.UserRewards(userID)
		if err != nil {
			return err
		}

		response := make([]fiber.Map, 0, len(rewards))
		for _, r := range rewards {
			response = append(response, fiber.Map{
				"reward_name": r.RewardName,
				"rewarded_at": r.RewardedAt.Format("2006-01-02 15:04:05"),
			})
		}
		return c.JSON(response)
	})
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
