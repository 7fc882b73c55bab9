// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nouvelayiti/nouvel-go/internal/auth"
	"github.com/nouvelayiti/nouvel-go/internal/i18n"
	"github.com/nouvelayiti/nouvel-go/internal/model"
)

// SeedParams configures startup seeding.
type SeedParams struct {
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	DemoContent   bool
}

// Seed installs the bootstrap admin account and, when enabled, the demo
// content. The store is memory-resident so this runs on every start; it
// is the explicit startup lifecycle step, never an import-time side
// effect.
func Seed(ctx context.Context, s Store, params SeedParams) error {
	passwordHash, err := auth.HashPassword(params.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin, err := s.CreateUser(ctx, CreateUserParams{
		Username:     params.AdminUsername,
		Email:        params.AdminEmail,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	slog.Info("created admin user", "id", admin.ID, "username", admin.Username)

	if !params.DemoContent {
		return nil
	}
	if err := seedDemo(ctx, s, admin.ID); err != nil {
		return fmt.Errorf("seeding demo content: %w", err)
	}
	slog.Info("demo content seeded")
	return nil
}

// seedDemo installs the trilingual demo content: categories, articles,
// media and the current reader poll.
func seedDemo(ctx context.Context, s Store, authorID int64) error {
	categories := []CreateCategoryParams{
		{
			Name:  i18n.NewText("Politik", "Politique", "Politics"),
			Slug:  "politik",
			Icon:  "landmark",
			Color: "#1d4ed8",
		},
		{
			Name:  i18n.NewText("Ekonomi", "Économie", "Economy"),
			Slug:  "ekonomi",
			Icon:  "trending-up",
			Color: "#047857",
		},
		{
			Name:  i18n.NewText("Spò", "Sports", "Sports"),
			Slug:  "spo",
			Icon:  "trophy",
			Color: "#b45309",
		},
		{
			Name:  i18n.NewText("Kilti", "Culture", "Culture"),
			Slug:  "kilti",
			Icon:  "music",
			Color: "#7c3aed",
		},
	}

	catIDs := make(map[string]int64, len(categories))
	for _, arg := range categories {
		c, err := s.CreateCategory(ctx, arg)
		if err != nil {
			return err
		}
		catIDs[c.Slug] = c.ID
	}

	articles := []CreateArticleParams{
		{
			Title: i18n.NewText(
				"Nouvo inisyativ pou agrikilti Ayiti",
				"Nouvelle initiative pour l'agriculture en Haïti",
				"New agriculture initiative for Haiti",
			),
			Content: i18n.NewText(
				"Gouvènman an lanse yon nouvo pwogram pou sipòte ti kiltivatè yo nan tout peyi a. Pwogram nan ap bay semans, zouti ak fòmasyon.",
				"Le gouvernement lance un nouveau programme de soutien aux petits agriculteurs à travers le pays, avec des semences, des outils et des formations.",
				"The government is launching a new program to support smallholder farmers across the country with seeds, tools and training.",
			),
			Excerpt: i18n.NewText(
				"Yon pwogram nasyonal pou ti kiltivatè yo.",
				"Un programme national pour les petits agriculteurs.",
				"A national program for smallholder farmers.",
			),
			Slug:       "nouvo-inisyativ-pou-agrikilti-ayiti",
			ImageURL:   "https://images.nouvelayiti.ht/agrikilti.jpg",
			CategoryID: catIDs["ekonomi"],
			AuthorID:   authorID,
			Featured:   true,
			Tags:       []string{"agrikilti", "ekonomi"},
			ReadTime:   4,
		},
		{
			Title: i18n.NewText(
				"Palman an vote nouvo bidjè a",
				"Le parlement adopte le nouveau budget",
				"Parliament passes the new budget",
			),
			Content: i18n.NewText(
				"Apre plizyè semèn deba, palman an vote bidjè nasyonal la ak yon majorite laj.",
				"Après plusieurs semaines de débats, le parlement a adopté le budget national à une large majorité.",
				"After weeks of debate, parliament passed the national budget by a wide margin.",
			),
			Excerpt: i18n.NewText(
				"Bidjè nasyonal la pase ak yon majorite laj.",
				"Le budget national adopté à une large majorité.",
				"National budget passes by a wide margin.",
			),
			Slug:       "palman-an-vote-nouvo-bidje-a",
			ImageURL:   "https://images.nouvelayiti.ht/palman.jpg",
			CategoryID: catIDs["politik"],
			AuthorID:   authorID,
			Featured:   true,
			Tags:       []string{"politik", "bidje"},
			ReadTime:   3,
		},
		{
			Title: i18n.NewText(
				"Seleksyon nasyonal la kalifye pou gran final la",
				"La sélection nationale qualifiée pour la grande finale",
				"National team qualifies for the final",
			),
			Content: i18n.NewText(
				"Grenadye yo bat advèsè yo 2-0 epi yo kalifye pou final chanpyona rejyonal la.",
				"Les Grenadiers ont battu leurs adversaires 2-0 et se qualifient pour la finale du championnat régional.",
				"The Grenadiers beat their opponents 2-0 to qualify for the regional championship final.",
			),
			Excerpt: i18n.NewText(
				"Grenadye yo nan final la!",
				"Les Grenadiers en finale !",
				"Grenadiers reach the final!",
			),
			Slug:       "seleksyon-nasyonal-la-kalifye",
			ImageURL:   "https://images.nouvelayiti.ht/foutbol.jpg",
			CategoryID: catIDs["spo"],
			AuthorID:   authorID,
			Tags:       []string{"foutbol", "grenadye"},
			ReadTime:   2,
		},
		{
			Title: i18n.NewText(
				"Festival Jazz Pòtoprens retounen",
				"Le Festival Jazz de Port-au-Prince est de retour",
				"Port-au-Prince Jazz Festival returns",
			),
			Content: i18n.NewText(
				"Festival entènasyonal jazz la ap fèt ane sa a ak atis ki soti nan dis peyi.",
				"Le festival international de jazz revient cette année avec des artistes venus de dix pays.",
				"The international jazz festival returns this year with artists from ten countries.",
			),
			Excerpt: i18n.NewText(
				"Dis peyi, yon sèl sèn.",
				"Dix pays, une seule scène.",
				"Ten countries, one stage.",
			),
			Slug:       "festival-jazz-potoprens-retounen",
			ImageURL:   "https://images.nouvelayiti.ht/jazz.jpg",
			CategoryID: catIDs["kilti"],
			AuthorID:   authorID,
			Tags:       []string{"mizik", "festival"},
			ReadTime:   3,
		},
	}

	for _, arg := range articles {
		if _, err := s.CreateArticle(ctx, arg); err != nil {
			return err
		}
	}

	media := []CreateMediaParams{
		{
			Title:        i18n.NewText("Foto mache Kenskòf", "Photos du marché de Kenscoff", "Kenscoff market photos"),
			Description:  i18n.NewText("Yon jounen nan mache a", "Une journée au marché", "A day at the market"),
			Type:         model.MediaTypePhoto,
			URL:          "https://media.nouvelayiti.ht/photos/kenskof.jpg",
			ThumbnailURL: "https://media.nouvelayiti.ht/photos/kenskof-thumb.jpg",
		},
		{
			Title:       i18n.NewText("Repòtaj: rekòt kafe a", "Reportage : la récolte du café", "Report: the coffee harvest"),
			Description: i18n.NewText("Videyo sou rekòt kafe nan Nò", "Vidéo sur la récolte du café dans le Nord", "Video on the coffee harvest in the North"),
			Type:        model.MediaTypeVideo,
			URL:         "https://media.nouvelayiti.ht/video/kafe.mp4",
		},
	}
	for _, arg := range media {
		if _, err := s.CreateMedia(ctx, arg); err != nil {
			return err
		}
	}

	expires := time.Now().AddDate(0, 1, 0)
	_, _, err := s.CreatePoll(ctx, CreatePollParams{
		Question: i18n.NewText(
			"Ki sijè ki enterese w plis?",
			"Quel sujet vous intéresse le plus ?",
			"Which topic interests you most?",
		),
		Options: []i18n.Text{
			i18n.NewText("Politik", "Politique", "Politics"),
			i18n.NewText("Ekonomi", "Économie", "Economy"),
			i18n.NewText("Spò", "Sports", "Sports"),
			i18n.NewText("Kilti", "Culture", "Culture"),
		},
		Active:    true,
		ExpiresAt: &expires,
	})
	return err
}
