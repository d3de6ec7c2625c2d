package services

import (
	"log/slog"

	"life-missions-system/models"
	"life-missions-system/store"

	"github.com/gosimple/slug"
)

type seedMission struct {
	Title       string
	Description string
	LevelNumber int
	Points      int
}

var seedLives = map[string][]seedMission{
	"Boulangerie": {
		{Title: "Pétrir sa première pâte", Description: "Préparer une pâte à pain maison", LevelNumber: 1, Points: 10},
		{Title: "Cuire une baguette", Description: "Réussir la cuisson d'une baguette tradition", LevelNumber: 1, Points: 10},
		{Title: "Réaliser des croissants", Description: "Tourage et façonnage de croissants au beurre", LevelNumber: 2, Points: 20},
		{Title: "Monter une pièce montée", Description: "Assembler une pièce montée de choux", LevelNumber: 3, Points: 30},
		{Title: "Lancer son levain", Description: "Entretenir un levain naturel pendant une semaine", LevelNumber: 4, Points: 50},
	},
	"Jardinage": {
		{Title: "Semer des radis", Description: "Premier semis en pleine terre", LevelNumber: 1, Points: 10},
		{Title: "Installer un composteur", Description: "Mettre en place un compost de jardin", LevelNumber: 2, Points: 20},
		{Title: "Tailler un fruitier", Description: "Taille d'hiver d'un arbre fruitier", LevelNumber: 3, Points: 30},
	},
}

// SeedReferenceData inserts the default lives and their missions if they are
// not already present. Idempotent; safe to run at every startup.
func SeedReferenceData(st *store.Store) error {
	for name, missions := range seedLives {
		life := models.Life{Name: name, Slug: slug.Make(name)}
		if err := st.DB.Where("slug = ?", life.Slug).FirstOrCreate(&life).Error; err != nil {
			return err
		}
		for _, m := range missions {
			mission := models.Mission{
				LifeID:      life.ID,
				LevelNumber: m.LevelNumber,
				Title:       m.Title,
				Slug:        slug.Make(m.Title),
				Description: m.Description,
				Points:      m.Points,
			}
			if err := st.DB.Where("slug = ?", mission.Slug).FirstOrCreate(&mission).Error; err != nil {
				return err
			}
		}
	}
	slog.Info("reference data seeded", "lives", len(seedLives))
	return nil
}
