// Package seed populates an empty database with sample users and notes so a
// fresh deployment has browsable content.
package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"notevault/internal/models"
)

const seedPassword = "demo123"

type seedUser struct {
	models.User
	following []string
	badges    []string
}

type seedNote struct {
	models.Note
	likedBy []string
}

// Run seeds the sample dataset when the users table is empty. It is a no-op
// otherwise, so restarts never duplicate data.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	day := int64(24 * time.Hour / time.Millisecond)
	users, notes := sampleData(now, day)

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range users {
			u.PasswordHash = string(hash)
			u.CreatedAt = now
			if err := tx.Create(&u.User).Error; err != nil {
				return err
			}
			for _, badgeID := range u.badges {
				award := models.BadgeAward{UserID: u.ID, BadgeID: badgeID, EarnedAt: now}
				if err := tx.Create(&award).Error; err != nil {
					return err
				}
			}
		}
		for _, u := range users {
			for _, target := range u.following {
				follow := models.Follow{FollowerID: u.ID, FollowingID: target}
				if err := tx.Create(&follow).Error; err != nil {
					return err
				}
			}
		}
		for _, n := range notes {
			if err := tx.Create(&n.Note).Error; err != nil {
				return err
			}
			for _, userID := range n.likedBy {
				like := models.Like{UserID: userID, NoteID: n.ID}
				if err := tx.Create(&like).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func sampleData(now, day int64) ([]seedUser, []seedNote) {
	users := []seedUser{
		{
			User:      models.User{ID: "user_1", Name: "wani shahid", Username: "@wani", Email: "wani@notevault.com", Bio: "Developer of NoteVault! ❤️", AvatarGradient: "linear-gradient(135deg, #8b5cf6, #06b6d4)"},
			following: []string{"user_2", "user_4"},
			badges:    []string{"first_note", "five_notes"},
		},
		{
			User:      models.User{ID: "user_2", Name: "Aisha Khan", Username: "@aisha_k", Email: "aisha@notevault.com", Bio: "Math enthusiast & problem solver 🧮", AvatarGradient: "linear-gradient(135deg, #ec4899, #f97316)"},
			following: []string{"user_1", "user_3"},
			badges:    []string{"first_note", "five_notes", "popular"},
		},
		{
			User:      models.User{ID: "user_3", Name: "Raghav Patel", Username: "@raghav_p", Email: "raghav@notevault.com", Bio: "Physics lover | Exploring the universe 🚀", AvatarGradient: "linear-gradient(135deg, #06b6d4, #3b82f6)"},
			following: []string{"user_1", "user_6"},
			badges:    []string{"first_note", "multi_subject"},
		},
		{
			User:      models.User{ID: "user_4", Name: "Priya Sharma", Username: "@priya_codes", Email: "priya@notevault.com", Bio: "CS student | Open source contributor", AvatarGradient: "linear-gradient(135deg, #3b82f6, #10b981)"},
			following: []string{"user_2"},
			badges:    []string{"first_note", "ten_notes", "all_rounder"},
		},
		{
			User:      models.User{ID: "user_5", Name: "Arjun Mehta", Username: "@arjun_m", Email: "arjun@notevault.com", Bio: "Biology & Chemistry geek 🧪", AvatarGradient: "linear-gradient(135deg, #10b981, #fbbf24)"},
			following: []string{"user_1", "user_3"},
			badges:    []string{"first_note"},
		},
		{
			User:      models.User{ID: "user_6", Name: "Sneha Reddy", Username: "@sneha_r", Email: "sneha@notevault.com", Bio: "History buff & storyteller 📜", AvatarGradient: "linear-gradient(135deg, #f97316, #ec4899)"},
			following: []string{"user_3", "user_4"},
			badges:    []string{"first_note"},
		},
	}

	notes := []seedNote{
		{
			Note: models.Note{
				ID: "note_1", UserID: "user_2", Subject: "math", ClassLevel: "11", Topic: "Calculus",
				Title:   "Introduction to Limits & Continuity",
				Content: "Understanding limits is the foundation of calculus. A limit describes the value a function approaches as the input approaches a certain point.\n\nKey Concepts:\n1. Left-hand limit (LHL)\n2. Right-hand limit (RHL)\n3. A limit exists when LHL = RHL",
				Views:   156, CreatedAt: now - 2*day,
			},
			likedBy: []string{"user_1", "user_3", "user_5"},
		},
		{
			Note: models.Note{
				ID: "note_2", UserID: "user_3", Subject: "physics", ClassLevel: "12", Topic: "Electromagnetism",
				Title:   "Maxwell's Equations Simplified",
				Content: "Maxwell's four equations unify electricity and magnetism:\n1. Gauss's Law\n2. Faraday's Law\n3. Ampere-Maxwell Law",
				Views:   203, CreatedAt: now - 1*day,
			},
			likedBy: []string{"user_1", "user_2", "user_4", "user_5"},
		},
		{
			Note: models.Note{
				ID: "note_3", UserID: "user_4", Subject: "cs", ClassLevel: "ug", Topic: "Data Structures",
				Title:   "Binary Search Tree — Operations",
				Content: "A BST maintains the property: Left values < node value, Right values > node value.\nSearching, Insertion, and Deletion are O(h).",
				Views:   134, CreatedAt: now - 3*day,
			},
			likedBy: []string{"user_1", "user_2"},
		},
		{
			Note: models.Note{
				ID: "note_4", UserID: "user_1", Subject: "math", ClassLevel: "10", Topic: "Algebra",
				Title:   "Quadratic Equations Guide",
				Content: "Standard form: ax² + bx + c = 0. Use the quadratic formula: x = (-b ± √(b²-4ac)) / 2a",
				Views:   98, CreatedAt: now - 5*day,
			},
			likedBy: []string{"user_2", "user_3"},
		},
		{
			Note: models.Note{
				ID: "note_5", UserID: "user_6", Subject: "history", ClassLevel: "10", Topic: "Modern History",
				Title:   "The French Revolution — Impact",
				Content: "The French Revolution (1789-1799) fundamentally transformed France, ending absolute monarchy.",
				Views:   67, CreatedAt: now - 3*day,
			},
			likedBy: []string{"user_1", "user_3"},
		},
		{
			Note: models.Note{
				ID: "note_6", UserID: "user_5", Subject: "chemistry", ClassLevel: "11", Topic: "Organic Chemistry",
				Title:   "IUPAC Naming Rules",
				Content: "Find the longest chain, number from closest substituent, list alphabetically.",
				Views:   112, CreatedAt: now - day - day/2,
			},
			likedBy: []string{"user_1", "user_2", "user_4"},
		},
	}

	return users, notes
}
