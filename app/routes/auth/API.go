package auth

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/musicorai90/lca/app/config"
	"github.com/musicorai90/lca/app/database"
	"github.com/musicorai90/lca/app/models"
	"github.com/musicorai90/lca/app/services"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByUsername(config.GetDB(), req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	if !user.Role.Valid() {
		// Misprovisioned identity; refuse rather than guess.
		return c.Status(403).JSON(fiber.Map{"error": "Identity has no valid role assigned"})
	}

	token, err := GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	userID := c.Locals("user_id").(string)
	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, req.NewPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// ShowProfilePage renders the caller's own record: the student record
// for student principals, the staff record otherwise.
func ShowProfilePage(c *fiber.Ctx) error {
	db := config.GetDB()
	username := CallerUsername(c)
	role := CallerRole(c)

	data := fiber.Map{
		"Title":       "Profile - LCA Records",
		"CurrentPage": "profile",
		"Role":        role,
	}

	if role == models.RoleSecretary {
		// Secretaries have no person record; the identity is all there is.
		data["username"] = username
		return c.Render("auth/profile", data)
	}

	if role == models.RoleStudent {
		student, err := database.GetStudentByNationalID(db, username)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Student record not found")
		}
		data["student"] = student
	} else {
		staff, err := database.GetStaffByNationalID(db, username)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Staff record not found")
		}
		data["staff"] = staff
	}

	return c.Render("auth/profile", data)
}

// UpdateProfileAPI lets a principal edit their own contact details.
// Changing the national ID renames the login identity; a collision
// aborts the whole update.
func UpdateProfileAPI(c *fiber.Ctx) error {
	type ProfileRequest struct {
		NationalID string  `json:"national_id" validate:"required,max=8"`
		Name       string  `json:"name" validate:"required,max=50"`
		Phone      string  `json:"phone" validate:"required,max=12"`
		Address    string  `json:"address" validate:"required,max=100"`
		Email      *string `json:"email" validate:"omitempty,email"`
		BirthDate  string  `json:"birth_date" validate:"required"`
		PhotoPath  *string `json:"photo_path"`
	}

	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := models.ValidateStruct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	birthDate, err := models.ParseDate(req.BirthDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid birth date"})
	}

	db := config.GetDB()
	username := CallerUsername(c)

	if CallerRole(c) == models.RoleStudent {
		student, err := database.GetStudentByNationalID(db, username)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "Student record not found"})
		}
		taken, err := database.UsernameTaken(db, req.NationalID, student.UserID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		rename, err := services.PlanRename(username, req.NationalID, taken)
		if err != nil {
			return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
		}
		student.NationalID = req.NationalID
		student.Name = req.Name
		student.Phone = req.Phone
		student.Address = req.Address
		student.Email = req.Email
		student.BirthDate = birthDate
		student.PhotoPath = req.PhotoPath
		if err := database.UpdateStudentWithIdentity(db, student, rename); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
		}
		return c.JSON(fiber.Map{"message": "Profile updated successfully", "student": student})
	}

	staff, err := database.GetStaffByNationalID(db, username)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Staff record not found"})
	}
	taken, err := database.UsernameTaken(db, req.NationalID, staff.UserID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	rename, err := services.PlanRename(username, req.NationalID, taken)
	if err != nil {
		return c.Status(services.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	staff.NationalID = req.NationalID
	staff.Name = req.Name
	staff.Phone = req.Phone
	staff.Address = req.Address
	staff.Email = req.Email
	staff.BirthDate = birthDate
	staff.PhotoPath = req.PhotoPath
	if err := database.UpdateStaffWithIdentity(db, staff, rename); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(fiber.Map{"message": "Profile updated successfully", "staff": staff})
}
