package database

import (
	"fmt"
	"log"
	"time"

	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the demo dataset. It is a no-op when users already exist, so it
// can be run repeatedly during development.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount > 0 {
		log.Println("Seed skipped: users already exist")
		return nil
	}

	if err := SeedSkills(db); err != nil {
		return fmt.Errorf("failed to seed skill vocabulary: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("volunteer-demo"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []models.User{
			{Name: "John Doe", Email: "john@example.com", AvatarInitials: "JD", City: "Bath", IsVerified: true, MemberSince: "January 2026", Rating: 4.9, TotalHours: 12, TasksCompleted: 5},
			{Name: "Sarah Johnson", Email: "sarah@example.com", AvatarInitials: "SJ", City: "Birmingham", IsVerified: true, MemberSince: "December 2025", Rating: 4.9, TotalHours: 45, TasksCompleted: 23},
			{Name: "Mike Chen", Email: "mike@example.com", AvatarInitials: "MC", City: "Bristol", IsVerified: true, MemberSince: "November 2025", Rating: 4.7, TotalHours: 30, TasksCompleted: 15},
			{Name: "Margaret Wilson", Email: "margaret@example.com", AvatarInitials: "MW", City: "Cardiff", IsVerified: true, MemberSince: "October 2025", Rating: 4.8, TotalHours: 8, TasksCompleted: 3},
			{Name: "Emily Davis", Email: "emily@example.com", AvatarInitials: "ED", City: "Edinburgh", IsVerified: true, MemberSince: "January 2026", Rating: 4.6, TotalHours: 20, TasksCompleted: 10},
			{Name: "Community Garden Org", Email: "garden@example.com", AvatarInitials: "CG", City: "Birmingham", IsVerified: true, IsOrganization: true, MemberSince: "September 2025", Rating: 5.0, TotalHours: 100, TasksCompleted: 50},
			{Name: "Local Library", Email: "library@example.com", AvatarInitials: "LL", City: "Bristol", IsVerified: true, IsOrganization: true, MemberSince: "August 2025", Rating: 4.9, TotalHours: 200, TasksCompleted: 80},
		}
		for i := range users {
			users[i].PasswordHash = string(hash)
			if err := tx.Create(&users[i]).Error; err != nil {
				return err
			}
		}

		var vocab []models.Skill
		if err := tx.Order("id").Find(&vocab).Error; err != nil {
			return err
		}
		byName := make(map[string]models.Skill, len(vocab))
		for _, s := range vocab {
			byName[s.Name] = s
		}
		userSkills := map[int][]string{
			0: {"Heavy Lifting", "Transportation"},
			1: {"Gardening", "Cleaning"},
			2: {"Tech Help", "Repairs"},
			3: {"Transportation", "Cleaning"},
			4: {"Cooking", "Tutoring"},
		}
		for idx, names := range userSkills {
			for _, n := range names {
				if err := tx.Model(&users[idx]).Association("Skills").Append(&models.Skill{ID: byName[n].ID, Name: n}); err != nil {
					return err
				}
			}
		}

		completedAt := time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC)
		sarahID := users[1].ID
		tasks := []struct {
			task   models.Task
			skills []string
		}{
			{models.Task{Title: "Help elderly neighbor with grocery shopping", Description: "Need someone to help carry groceries home. Heavy items involved.", PostedByID: users[3].ID, Status: models.TaskStatusOpen, DurationMinutes: 60, LocationAddress: "123 Oak Street", City: "Bath", Latitude: 51.3758, Longitude: -2.3599, IsVerified: true, ScheduledDate: "2026-02-14", ScheduledTime: "14:00"}, []string{"Heavy Lifting", "Transportation"}},
			{models.Task{Title: "Community garden weeding session", Description: "Weekly weeding at the community garden. Tools provided.", PostedByID: users[5].ID, Status: models.TaskStatusOpen, DurationMinutes: 120, LocationAddress: "45 Garden Ave", City: "Birmingham", Latitude: 52.4862, Longitude: -1.8904, IsVerified: true, ScheduledDate: "2026-02-15", ScheduledTime: "09:00"}, []string{"Gardening"}},
			{models.Task{Title: "Teach basic computer skills to seniors", Description: "Help seniors learn to use smartphones and email at the community center.", PostedByID: users[6].ID, Status: models.TaskStatusOpen, DurationMinutes: 90, LocationAddress: "78 Library Road", City: "Bristol", Latitude: 51.4545, Longitude: -2.5879, IsVerified: true, ScheduledDate: "2026-02-16", ScheduledTime: "10:00"}, []string{"Tech Help", "Tutoring"}},
			{models.Task{Title: "Dog walking for recovering patient", Description: "I recently had surgery and need help walking my golden retriever for 2 weeks.", PostedByID: users[4].ID, Status: models.TaskStatusOpen, DurationMinutes: 30, LocationAddress: "56 Maple Drive", City: "Cardiff", Latitude: 51.4816, Longitude: -3.1791, IsVerified: true, ScheduledDate: "2026-02-17", ScheduledTime: "08:00"}, []string{"Pet Care"}},
			{models.Task{Title: "Sort donations at food bank", Description: "Help organize and sort incoming food donations.", PostedByID: users[5].ID, Status: models.TaskStatusCompleted, AcceptedByID: &sarahID, DurationMinutes: 120, LocationAddress: "200 Charity Lane", City: "Edinburgh", Latitude: 55.9533, Longitude: -3.1883, IsVerified: true, ScheduledDate: "2026-02-10", ScheduledTime: "09:00", CompletionNotes: "Sorted 5 bags of donations", CompletedAt: &completedAt}, []string{"Heavy Lifting", "Cleaning"}},
			{models.Task{Title: "Paint community mural", Description: "Help paint a neighborhood mural on the community center wall.", PostedByID: users[5].ID, Status: models.TaskStatusOpen, DurationMinutes: 180, LocationAddress: "15 Art Street", City: "Exeter", Latitude: 50.7184, Longitude: -3.5339, IsVerified: true, ScheduledDate: "2026-02-20", ScheduledTime: "10:00"}, []string{"Arts & Crafts"}},
			{models.Task{Title: "Litter picking at the park", Description: "Monthly cleanup drive. Bags and gloves provided.", PostedByID: users[5].ID, Status: models.TaskStatusOpen, DurationMinutes: 90, LocationAddress: "Victoria Park", City: "Bath", Latitude: 51.3781, Longitude: -2.3723, IsVerified: true, ScheduledDate: "2026-02-22", ScheduledTime: "07:00"}, []string{"Cleaning"}},
			{models.Task{Title: "Cooking meals for shelter", Description: "Prepare meals for 20 people at the homeless shelter.", PostedByID: users[6].ID, Status: models.TaskStatusOpen, DurationMinutes: 120, LocationAddress: "30 Shelter Road", City: "Bristol", Latitude: 51.4496, Longitude: -2.6, IsVerified: true, ScheduledDate: "2026-02-28", ScheduledTime: "11:00"}, []string{"Cooking"}},
			{models.Task{Title: "Fix leaky faucet for elderly resident", Description: "Simple plumbing repair needed at an elderly resident's home.", PostedByID: users[3].ID, Status: models.TaskStatusOpen, DurationMinutes: 60, LocationAddress: "12 Resident Lane", City: "Cardiff", Latitude: 51.49, Longitude: -3.17, IsVerified: true, ScheduledDate: "2026-03-01", ScheduledTime: "14:00"}, []string{"Repairs"}},
		}
		for i := range tasks {
			if err := tx.Create(&tasks[i].task).Error; err != nil {
				return err
			}
			for _, n := range tasks[i].skills {
				skill := byName[n]
				if err := tx.Model(&tasks[i].task).Association("Skills").Append(&skill); err != nil {
					return err
				}
			}
		}

		availability := []models.Availability{
			{UserID: users[1].ID, Date: "2026-02-18", StartTime: "14:00", EndTime: "16:00", City: "Birmingham"},
			{UserID: users[1].ID, Date: "2026-02-20", StartTime: "09:00", EndTime: "12:00", City: "Birmingham"},
			{UserID: users[2].ID, Date: "2026-02-19", StartTime: "10:00", EndTime: "14:00", City: "Bristol"},
			{UserID: users[4].ID, Date: "2026-02-18", StartTime: "13:00", EndTime: "17:00", City: "Edinburgh"},
		}
		if err := tx.Create(&availability).Error; err != nil {
			return err
		}

		foodBankID := tasks[4].task.ID
		posts := []models.CommunityPost{
			{UserID: users[1].ID, TaskID: &foodBankID, Content: "It was wonderful helping at the food bank today! Small acts of kindness really do make a difference.", Likes: 12},
			{UserID: users[2].ID, Content: "Just finished a great tutoring session at the library. The seniors are getting so good with their phones!", Likes: 8},
			{UserID: users[0].ID, Content: "Looking forward to the community garden session this weekend. Who else is joining?", Likes: 5},
		}
		if err := tx.Create(&posts).Error; err != nil {
			return err
		}

		reports := []models.ImpactReport{
			{UserID: users[1].ID, TaskID: tasks[4].task.ID, HoursLogged: 2.0, BagsCollected: 5, PeopleHelped: 3, CarbonSavedKg: 1.2, Notes: "Sorted 5 bags of donations"},
			{UserID: users[0].ID, TaskID: tasks[0].task.ID, HoursLogged: 1.0, PeopleHelped: 1, CarbonSavedKg: 0.5, Notes: "Helped Margaret with groceries"},
			{UserID: users[2].ID, TaskID: tasks[2].task.ID, HoursLogged: 1.5, ItemsFixed: 2, PeopleHelped: 5, Notes: "Taught 5 seniors email basics"},
		}
		if err := tx.Create(&reports).Error; err != nil {
			return err
		}

		log.Printf("Seeded %d users and %d tasks", len(users), len(tasks))
		return nil
	})
}
