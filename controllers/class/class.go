package classController

import (
	"sort"
	"speakup/database"
	"speakup/middleware"
	"speakup/models"
	"speakup/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetApprovedClasses lists every class that passed admin review.
func GetApprovedClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.
		Where("status = ?", models.StatusApproved).
		Find(&classes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch classes!")
	}
	return c.JSON(classes)
}

// GetPopularClasses returns the top 6 approved classes by enrollment count.
func GetPopularClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.Database.Db.
		Where("status = ?", models.StatusApproved).
		Order("enrolled desc").
		Limit(6).
		Find(&classes).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch classes!")
	}
	return c.JSON(classes)
}

// GetClassByID fetches a single class.
func GetClassByID(c *fiber.Ctx) error {
	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid class id!")
	}

	var class models.Class
	if err := database.Database.Db.First(&class, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Class not found!")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch class!")
	}

	return c.JSON(class)
}

// InstructorInfo is a user holding the instructor role plus the number of
// approved classes they run.
type InstructorInfo struct {
	models.User
	NumClasses int `json:"numClasses"`
}

// GetInstructors lists every instructor with their approved class count.
func GetInstructors(c *fiber.Ctx) error {
	instructors, err := listInstructors()
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch instructors!")
	}
	return c.JSON(instructors)
}

// GetPopularInstructors returns the top 6 instructors by approved class count.
func GetPopularInstructors(c *fiber.Ctx) error {
	instructors, err := listInstructors()
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch instructors!")
	}

	sort.SliceStable(instructors, func(i, j int) bool {
		return instructors[i].NumClasses > instructors[j].NumClasses
	})
	if len(instructors) > 6 {
		instructors = instructors[:6]
	}

	return c.JSON(instructors)
}

func listInstructors() ([]InstructorInfo, error) {
	db := database.Database.Db

	var users []models.User
	if err := db.Where("role = ?", models.RoleInstructor).Find(&users).Error; err != nil {
		return nil, err
	}

	// Count approved classes per instructor in one grouped query
	type classCount struct {
		InstructorEmail string
		Count           int
	}
	var counts []classCount
	if err := db.Model(&models.Class{}).
		Select("instructor_email, count(*) as count").
		Where("status = ?", models.StatusApproved).
		Group("instructor_email").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	countByEmail := make(map[string]int, len(counts))
	for _, cc := range counts {
		countByEmail[cc.InstructorEmail] = cc.Count
	}

	instructors := make([]InstructorInfo, 0, len(users))
	for _, u := range users {
		instructors = append(instructors, InstructorInfo{
			User:       u,
			NumClasses: countByEmail[u.Email],
		})
	}
	return instructors, nil
}
