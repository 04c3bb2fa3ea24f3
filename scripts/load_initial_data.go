package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"manager-os-backend/internal/config"
	"manager-os-backend/internal/database"
	"manager-os-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Domain      string `yaml:"domain"`
	Description string `yaml:"description"`
}

type TeamData struct {
	Name             string `yaml:"name"`
	OrganizationName string `yaml:"organization_name"`
	Description      string `yaml:"description"`
}

type PersonData struct {
	OrganizationName string `yaml:"organization_name"`
	TeamName         string `yaml:"team_name,omitempty"`
	FullName         string `yaml:"full_name"`
	FirstName        string `yaml:"first_name"`
	LastName         string `yaml:"last_name"`
	Email            string `yaml:"email"`
}

type UserData struct {
	Email            string `yaml:"email"`
	Name             string `yaml:"name"`
	OrganizationName string `yaml:"organization_name,omitempty"`
	PersonEmail      string `yaml:"person_email,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PeopleFile struct {
	People []PersonData `yaml:"people"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs including "record not found" noise from the
	// get-or-create lookups below
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	people, err := loadPeople(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create teams
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	// Create people
	personMap := make(map[string]*models.Person)
	personCreated := 0
	for _, personData := range people {
		person, created, err := createPerson(db, personData, orgMap, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create person %s: %w", personData.Email, err)
		}
		personMap[personData.Email] = person
		if created {
			personCreated++
		}
	}
	log.Printf("People: %d created, %d total", personCreated, len(people))

	// Create users last so they can link to people
	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData, orgMap, personMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadPeople(dataDir string) ([]PersonData, error) {
	var allPeople []PersonData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "people") {
			var file PeopleFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPeople = append(allPeople, file.People...)
		}
		return nil
	})

	return allPeople, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:        orgData.Name,
				DisplayName: orgData.DisplayName,
				Domain:      orgData.Domain,
				Description: orgData.Description,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil
}

func createTeam(db *gorm.DB, teamData TeamData, orgMap map[string]*models.Organization) (*models.Team, bool, error) {
	org := orgMap[teamData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for team %s", teamData.OrganizationName, teamData.Name)
	}

	var team models.Team
	if err := db.Where("name = ? AND organization_id = ?", teamData.Name, org.ID).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				OrganizationID: org.ID,
				Name:           teamData.Name,
				Description:    teamData.Description,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil
}

func createPerson(db *gorm.DB, personData PersonData, orgMap map[string]*models.Organization, teamMap map[string]*models.Team) (*models.Person, bool, error) {
	org := orgMap[personData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for person %s", personData.OrganizationName, personData.Email)
	}

	var teamID *uuid.UUID
	if personData.TeamName != "" {
		if team := teamMap[personData.TeamName]; team != nil {
			teamID = &team.ID
		}
	}

	var person models.Person
	if err := db.Where("email = ? AND organization_id = ?", personData.Email, org.ID).First(&person).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			person = models.Person{
				OrganizationID: org.ID,
				TeamID:         teamID,
				FullName:       personData.FullName,
				FirstName:      personData.FirstName,
				LastName:       personData.LastName,
				Email:          personData.Email,
			}

			if err := db.Create(&person).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create person: %w", err)
			}
			return &person, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query person: %w", err)
		}
	}

	return &person, false, nil
}

func createUser(db *gorm.DB, userData UserData, orgMap map[string]*models.Organization, personMap map[string]*models.Person) (*models.User, bool, error) {
	var orgID *uuid.UUID
	if userData.OrganizationName != "" {
		if org := orgMap[userData.OrganizationName]; org != nil {
			orgID = &org.ID
		}
	}

	var personID *uuid.UUID
	if userData.PersonEmail != "" {
		if person := personMap[userData.PersonEmail]; person != nil {
			personID = &person.ID
		}
	}

	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Email:          userData.Email,
				Name:           userData.Name,
				OrganizationID: orgID,
				PersonID:       personID,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil
}
