package seeds

import (
	"log"

	"gorm.io/gorm"

	"pathshala_backend/internals/configs"
	"pathshala_backend/internals/constants"
	attendanceModel "pathshala_backend/internals/features/submissions/attendance/model"
	gathaModel "pathshala_backend/internals/features/submissions/gatha/model"
	adminModel "pathshala_backend/internals/features/users/admin/model"
	authService "pathshala_backend/internals/features/users/auth/service"
	groupModel "pathshala_backend/internals/features/users/family_group/model"
	userModel "pathshala_backend/internals/features/users/user/model"
)

// Run migrates the schema and rebuilds the admin accounts. It wipes the
// admins table first, so it is only meant for fresh installs and local
// development.
func Run(db *gorm.DB) error {
	log.Println("[INFO] Running migrations")
	if err := db.AutoMigrate(
		&adminModel.AdminModel{},
		&userModel.UserModel{},
		&groupModel.FamilyGroupModel{},
		&attendanceModel.AttendanceModel{},
		&gathaModel.GathaModel{},
	); err != nil {
		return err
	}

	log.Println("[INFO] Resetting admin accounts")
	if err := db.Exec("DELETE FROM admins").Error; err != nil {
		return err
	}

	hashed, err := authService.HashPassword(configs.AdminSeedPassword)
	if err != nil {
		return err
	}

	username := configs.AdminSeedName
	superAdmin := adminModel.AdminModel{
		Name:     configs.AdminSeedName,
		Username: &username,
		Password: hashed,
		Role:     constants.RoleSuperAdmin,
		IsActive: true,
	}
	if err := db.Create(&superAdmin).Error; err != nil {
		return err
	}
	log.Printf("[SUCCESS] Seeded super admin %q", superAdmin.Name)

	reviewerName := "reviewer"
	reviewer := adminModel.AdminModel{
		Name:     reviewerName,
		Username: &reviewerName,
		Password: hashed,
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&reviewer).Error; err != nil {
		return err
	}
	log.Printf("[SUCCESS] Seeded admin %q", reviewer.Name)
	return nil
}
