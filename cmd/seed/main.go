package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"showcase/internal/auth"
	"showcase/internal/config"
	"showcase/internal/db"
	"showcase/internal/model"
	"showcase/internal/repository"
)

// SeedFile is the fixture layout consumed by the seed script.
type SeedFile struct {
	Admin    *SeedUser     `json:"admin"`
	Projects []SeedProject `json:"projects"`
}

// SeedUser describes the bootstrap admin account.
type SeedUser struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// SeedProject describes one fixture project. ID is optional; entries with a
// stable ID are updated in place on re-runs.
type SeedProject struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"short_description"`
	Thumbnail        string             `json:"thumbnail"`
	GithubURL        string             `json:"github_url"`
	LiveURL          string             `json:"live_url"`
	Category         string             `json:"category"`
	Status           string             `json:"status"`
	Tags             []string           `json:"tags"`
	Technologies     []string           `json:"technologies"`
	TeamMembers      []model.TeamMember `json:"team_members"`
}

func main() {
	fixturePath := flag.String("fixture", "seed/projects.json", "path to the seed fixture JSON")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Project{}, &model.Vote{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	fixture, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}
	log.Printf("Loaded %d projects from %s", len(fixture.Projects), *fixturePath)

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB, cfg.StoreTimeout)
	projectRepo := repository.NewProjectRepository(gormDB, cfg.StoreTimeout)
	rolePolicy := auth.NewRolePolicy(cfg.AdminEmails)

	adminID, err := seedAdmin(ctx, userRepo, rolePolicy, fixture.Admin)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, updated, skipped, err := seedProjects(ctx, projectRepo, fixture.Projects, adminID)
	if err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New projects created: %d", created)
	log.Printf("  - Existing projects updated: %d", updated)
	if skipped > 0 {
		log.Printf("  - Skipped invalid entries: %d", skipped)
	}
}

// loadFixture reads and parses the fixture file.
func loadFixture(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var fixture SeedFile
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fixture, nil
}

// seedAdmin creates the bootstrap admin account if it does not exist yet and
// returns its ID for project ownership.
func seedAdmin(ctx context.Context, repo repository.UserRepository, policy *auth.RolePolicy, seed *SeedUser) (uuid.UUID, error) {
	if seed == nil {
		return uuid.Nil, fmt.Errorf("fixture has no admin entry")
	}

	existing, err := repo.FindByEmail(ctx, seed.Email)
	if err == nil {
		log.Printf("Admin user %s already exists", seed.Email)
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("check admin user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash admin password: %w", err)
	}

	user := &model.User{
		Email:        seed.Email,
		PasswordHash: string(hashed),
		DisplayName:  seed.DisplayName,
		Role:         policy.RoleFor(seed.Email),
	}
	if user.Role != model.RoleAdmin {
		log.Printf("Warning: %s is not in ADMIN_EMAILS; seeding as %s", seed.Email, user.Role)
	}
	if err := repo.Create(ctx, user); err != nil {
		return uuid.Nil, fmt.Errorf("create admin user: %w", err)
	}
	log.Printf("Created admin user %s", seed.Email)
	return user.ID, nil
}

// seedProjects upserts fixture projects, owned by the seeded admin.
func seedProjects(ctx context.Context, repo repository.ProjectRepository, seeds []SeedProject, ownerID uuid.UUID) (created, updated, skipped int, err error) {
	for _, item := range seeds {
		if item.Title == "" || item.Description == "" {
			log.Printf("Skipping entry with missing title or description")
			skipped++
			continue
		}

		project := &model.Project{
			Title:            item.Title,
			Description:      item.Description,
			ShortDescription: item.ShortDescription,
			Thumbnail:        item.Thumbnail,
			GithubURL:        item.GithubURL,
			LiveURL:          item.LiveURL,
			TeamMembers:      item.TeamMembers,
			Tags:             item.Tags,
			Technologies:     item.Technologies,
			Status:           model.ProjectStatus(item.Status),
			Category:         model.Category(item.Category),
			CreatedBy:        ownerID,
		}
		if project.Status == "" {
			project.Status = model.ProjectStatusActive
		}
		if project.Category == "" || !model.ValidCategory(project.Category) {
			project.Category = model.CategoryOther
		}

		if item.ID != "" {
			projectID, parseErr := uuid.Parse(item.ID)
			if parseErr != nil {
				log.Printf("Skipping project with invalid UUID: %s", item.ID)
				skipped++
				continue
			}

			existing, findErr := repo.FindByID(ctx, projectID)
			if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return created, updated, skipped, fmt.Errorf("check project %s: %w", item.ID, findErr)
			}
			if existing != nil {
				existing.Title = project.Title
				existing.Description = project.Description
				existing.ShortDescription = item.ShortDescription
				existing.Thumbnail = item.Thumbnail
				existing.GithubURL = project.GithubURL
				existing.LiveURL = project.LiveURL
				existing.TeamMembers = project.TeamMembers
				existing.Tags = project.Tags
				existing.Technologies = project.Technologies
				existing.Status = project.Status
				existing.Category = project.Category
				if updateErr := repo.Update(ctx, existing); updateErr != nil {
					return created, updated, skipped, fmt.Errorf("update project %s: %w", item.ID, updateErr)
				}
				updated++
				continue
			}
			project.ID = projectID
		}

		if createErr := repo.Create(ctx, project); createErr != nil {
			return created, updated, skipped, fmt.Errorf("create project %q: %w", item.Title, createErr)
		}
		created++
	}
	return created, updated, skipped, nil
}
