package controllers

import (
	"net/http/httptest"
	"testing"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupSavedCourseApp wires the saved-course handlers against an
// in-memory database with one user and one published course.
func setupSavedCourseApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.SavedCourse{}, &courseModels.Course{}); err != nil {
		t.Fatalf("migrating: %v", err)
	}

	user := models.User{Name: "Student", Email: "student@test.io", Password: "x", Role: "STUDENT", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("creating user: %v", err)
	}
	course := courseModels.Course{Title: "Go Basics", IsPublished: true}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("creating course: %v", err)
	}

	database.Database = database.DbInstance{Db: db}

	authed := func(c *fiber.Ctx) error {
		c.Locals("userId", user.ID)
		c.Locals("courseID", int(course.ID))
		return c.Next()
	}

	app := fiber.New()
	app.Post("/course/:id/save", authed, SaveCourse)
	app.Delete("/course/:id/save", authed, UnsaveCourse)
	return app
}

func TestSaveCourse_ReSaveAfterUnsave(t *testing.T) {
	app := setupSavedCourseApp(t)

	res, err := app.Test(httptest.NewRequest("POST", "/course/1/save", nil))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("first save expected 200, got %d", res.StatusCode)
	}

	res, err = app.Test(httptest.NewRequest("DELETE", "/course/1/save", nil))
	if err != nil {
		t.Fatalf("unsave: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("unsave expected 200, got %d", res.StatusCode)
	}

	// The unique (user, course) index must not block saving again
	res, err = app.Test(httptest.NewRequest("POST", "/course/1/save", nil))
	if err != nil {
		t.Fatalf("re-save: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("re-save expected 200, got %d", res.StatusCode)
	}

	var rows []models.SavedCourse
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&rows).Error; err != nil {
		t.Fatalf("reading bookmarks: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one live bookmark, got %d", len(rows))
	}
}

func TestSaveCourse_SavingTwiceIsNotAnError(t *testing.T) {
	app := setupSavedCourseApp(t)

	for i := 0; i < 2; i++ {
		res, err := app.Test(httptest.NewRequest("POST", "/course/1/save", nil))
		if err != nil {
			t.Fatalf("save %d: %v", i+1, err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("save %d expected 200, got %d", i+1, res.StatusCode)
		}
	}
}
