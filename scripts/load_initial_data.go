package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"wrist-ranking-backend/internal/auth"
	"wrist-ranking-backend/internal/config"
	"wrist-ranking-backend/internal/database"
	"wrist-ranking-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Nickname     string `yaml:"nickname,omitempty"`
	IsSuperAdmin bool   `yaml:"is_super_admin,omitempty"`
}

type RegionData struct {
	Name            string `yaml:"name"`
	Province        string `yaml:"province"`
	Description     string `yaml:"description,omitempty"`
	CoverImage      string `yaml:"cover_image,omitempty"`
	CreatorUsername string `yaml:"creator_username"`
}

type AdminData struct {
	RegionName string `yaml:"region_name"`
	Username   string `yaml:"username"`
}

type PlayerData struct {
	RegionName string `yaml:"region_name"`
	Hand       string `yaml:"hand"`
	Name       string `yaml:"name"`
	Avatar     string `yaml:"avatar,omitempty"`
	Power      string `yaml:"power,omitempty"`
	Skill      string `yaml:"skill,omitempty"`
}

type ContributionData struct {
	RegionName string   `yaml:"region_name"`
	Type       string   `yaml:"type"`
	Name       string   `yaml:"name"`
	Avatar     string   `yaml:"avatar,omitempty"`
	Value      string   `yaml:"value,omitempty"`
	Total      string   `yaml:"total,omitempty"`
	Notes      []string `yaml:"notes,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type RegionsFile struct {
	Regions []RegionData `yaml:"regions"`
}

type AdminsFile struct {
	Admins []AdminData `yaml:"admins"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

type ContributionsFile struct {
	Members []ContributionData `yaml:"members"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hasher := auth.NewService(cfg.JWTSecret)

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, hasher, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, hasher *auth.Service, dataDir string) error {
	// Load all data from YAML files
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	regions, err := loadRegions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load regions: %w", err)
	}

	admins, err := loadAdmins(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load admins: %w", err)
	}

	players, err := loadPlayers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	members, err := loadContributions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load contribution members: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, hasher, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create regions with their owner entries
	regionMap := make(map[string]*models.Region)
	regionCreated := 0
	for _, regionData := range regions {
		region, created, err := createRegion(db, regionData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create region %s: %w", regionData.Name, err)
		}
		regionMap[regionData.Name] = region
		if created {
			regionCreated++
		}
	}
	log.Printf("📋 Regions: %d created, %d total", regionCreated, len(regions))

	// Create admin roster entries
	adminCreated := 0
	for _, adminData := range admins {
		created, err := createAdmin(db, adminData, regionMap, userMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create admin %s in %s: %v", adminData.Username, adminData.RegionName, err)
			continue // Continue with other admins
		}
		if created {
			adminCreated++
		}
	}
	log.Printf("📋 Region admins: %d created, %d total", adminCreated, len(admins))

	// Create players; rank positions follow file order per board
	playerCreated := 0
	for _, playerData := range players {
		created, err := createPlayer(db, playerData, regionMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create player %s: %v", playerData.Name, err)
			continue // Continue with other players
		}
		if created {
			playerCreated++
		}
	}
	log.Printf("📋 Players: %d created, %d total", playerCreated, len(players))

	// Create contribution members with their initial note history
	memberCreated := 0
	for _, memberData := range members {
		created, err := createContribution(db, memberData, regionMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create contribution member %s: %v", memberData.Name, err)
			continue // Continue with other members
		}
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Contribution members: %d created, %d total", memberCreated, len(members))

	return nil
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

func loadRegions(dataDir string) ([]RegionData, error) {
	var allRegions []RegionData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "regions") {
			var file RegionsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allRegions = append(allRegions, file.Regions...)
		}
		return nil
	})

	return allRegions, err
}

func loadAdmins(dataDir string) ([]AdminData, error) {
	var allAdmins []AdminData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "admins") {
			var file AdminsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAdmins = append(allAdmins, file.Admins...)
		}
		return nil
	})

	return allAdmins, err
}

func loadPlayers(dataDir string) ([]PlayerData, error) {
	var allPlayers []PlayerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "players") {
			var file PlayersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPlayers = append(allPlayers, file.Players...)
		}
		return nil
	})

	return allPlayers, err
}

func loadContributions(dataDir string) ([]ContributionData, error) {
	var allMembers []ContributionData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "contributions") {
			var file ContributionsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMembers = append(allMembers, file.Members...)
		}
		return nil
	})

	return allMembers, err
}

func createUser(db *gorm.DB, hasher *auth.Service, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("username = ?", userData.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := hasher.HashPassword(userData.Password)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			nickname := userData.Nickname
			if nickname == "" {
				nickname = userData.Username
			}

			user = models.User{
				Username:     userData.Username,
				PasswordHash: hash,
				Nickname:     nickname,
				IsSuperAdmin: userData.IsSuperAdmin,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createRegion(db *gorm.DB, regionData RegionData, userMap map[string]*models.User) (*models.Region, bool, error) {
	creator := userMap[regionData.CreatorUsername]
	if creator == nil {
		return nil, false, fmt.Errorf("user %s not found for region %s", regionData.CreatorUsername, regionData.Name)
	}

	var region models.Region
	if err := db.Where("name = ?", regionData.Name).First(&region).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			region = models.Region{
				Name:        regionData.Name,
				Province:    regionData.Province,
				Description: regionData.Description,
				CoverImage:  regionData.CoverImage,
				CreatorID:   creator.ID,
			}

			if err := db.Create(&region).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create region: %w", err)
			}

			// The creator is always the region's owner
			owner := models.RegionAdmin{
				RegionID: region.ID,
				UserID:   creator.ID,
				Role:     models.AdminRoleOwner,
			}
			if err := db.Create(&owner).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create owner entry: %w", err)
			}

			return &region, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query region: %w", err)
		}
	}

	return &region, false, nil // created = false (existing)
}

func createAdmin(db *gorm.DB, adminData AdminData, regionMap map[string]*models.Region, userMap map[string]*models.User) (bool, error) {
	region := regionMap[adminData.RegionName]
	if region == nil {
		return false, fmt.Errorf("region %s not found", adminData.RegionName)
	}

	user := userMap[adminData.Username]
	if user == nil {
		return false, fmt.Errorf("user %s not found", adminData.Username)
	}

	var admin models.RegionAdmin
	if err := db.Where("region_id = ? AND user_id = ?", region.ID, user.ID).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			admin = models.RegionAdmin{
				RegionID: region.ID,
				UserID:   user.ID,
				Role:     models.AdminRoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				return false, fmt.Errorf("failed to create admin: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query admin: %w", err)
	}

	return false, nil // created = false (existing)
}

func createPlayer(db *gorm.DB, playerData PlayerData, regionMap map[string]*models.Region) (bool, error) {
	region := regionMap[playerData.RegionName]
	if region == nil {
		return false, fmt.Errorf("region %s not found", playerData.RegionName)
	}

	hand := models.Hand(playerData.Hand)
	if !hand.IsValid() {
		return false, fmt.Errorf("invalid hand %q", playerData.Hand)
	}

	var player models.Player
	err := db.Where("region_id = ? AND hand = ? AND name = ?", region.ID, hand, playerData.Name).First(&player).Error
	if err != gorm.ErrRecordNotFound {
		if err != nil {
			return false, fmt.Errorf("failed to query player: %w", err)
		}
		return false, nil // created = false (existing)
	}

	// Append at the bottom of the board
	var maxRank int64
	row := db.Model(&models.Player{}).
		Where("region_id = ? AND hand = ?", region.ID, hand).
		Select("COALESCE(MAX(rank_position), 0)").Row()
	if err := row.Scan(&maxRank); err != nil {
		return false, fmt.Errorf("failed to read max rank: %w", err)
	}
	if maxRank >= models.MaxPlayerRank {
		return false, fmt.Errorf("board %s/%s is full", playerData.RegionName, hand)
	}

	player = models.Player{
		RegionID:     region.ID,
		Hand:         hand,
		RankPosition: int(maxRank) + 1,
		Name:         playerData.Name,
		Avatar:       playerData.Avatar,
		Power:        playerData.Power,
		Skill:        playerData.Skill,
	}

	if err := db.Create(&player).Error; err != nil {
		return false, fmt.Errorf("failed to create player: %w", err)
	}
	return true, nil // created = true
}

func createContribution(db *gorm.DB, memberData ContributionData, regionMap map[string]*models.Region) (bool, error) {
	region := regionMap[memberData.RegionName]
	if region == nil {
		return false, fmt.Errorf("region %s not found", memberData.RegionName)
	}

	boardType := models.BoardType(memberData.Type)
	if !boardType.IsValid() {
		return false, fmt.Errorf("invalid board type %q", memberData.Type)
	}

	var member models.ContributionMember
	err := db.Where("region_id = ? AND type = ? AND name = ?", region.ID, boardType, memberData.Name).First(&member).Error
	if err != gorm.ErrRecordNotFound {
		if err != nil {
			return false, fmt.Errorf("failed to query contribution member: %w", err)
		}
		return false, nil // created = false (existing)
	}

	// Append at the bottom of the board
	var maxRank int64
	row := db.Model(&models.ContributionMember{}).
		Where("region_id = ? AND type = ?", region.ID, boardType).
		Select("COALESCE(MAX(rank_position), 0)").Row()
	if err := row.Scan(&maxRank); err != nil {
		return false, fmt.Errorf("failed to read max rank: %w", err)
	}

	member = models.ContributionMember{
		RegionID:     region.ID,
		Type:         boardType,
		RankPosition: int(maxRank) + 1,
		Name:         memberData.Name,
		Avatar:       memberData.Avatar,
		Value:        memberData.Value,
		Total:        memberData.Total,
	}

	if err := db.Create(&member).Error; err != nil {
		return false, fmt.Errorf("failed to create contribution member: %w", err)
	}

	for _, text := range memberData.Notes {
		note := models.ContributionNote{
			MemberID: member.ID,
			NoteText: text,
		}
		if err := db.Create(&note).Error; err != nil {
			log.Printf("⚠️  Warning: failed to create note for %s: %v", memberData.Name, err)
		}
	}

	return true, nil // created = true
}
