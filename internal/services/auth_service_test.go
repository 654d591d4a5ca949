package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/volunteerhub/volunteer-hub-api/internal/database"
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"github.com/volunteerhub/volunteer-hub-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

// SetupTest runs before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Skill{})
	suite.Require().NoError(err)
	suite.Require().NoError(database.SeedSkills(suite.db))

	userRepo := repository.NewUserRepository(suite.db)
	skillRepo := repository.NewSkillRepository(suite.db)
	suite.service = NewAuthService(userRepo, skillRepo)
}

// TearDownTest runs after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthServiceTestSuite) TestSignup_Success() {
	user, err := suite.service.Signup(SignupInput{
		Name:     "Jordan Rivera",
		Email:    "Jordan@Example.com",
		Password: "password123",
		City:     "Springfield",
		Skills:   []string{"Gardening", "Cooking"},
	})
	suite.Require().NoError(err)

	suite.Equal("jordan@example.com", user.Email)
	suite.Equal("JR", user.AvatarInitials)
	suite.NotEmpty(user.MemberSince)
	suite.Len(user.Skills, 2)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func (suite *AuthServiceTestSuite) TestSignup_DuplicateEmail() {
	_, err := suite.service.Signup(SignupInput{Name: "A", Email: "a@example.com", Password: "password123"})
	suite.Require().NoError(err)

	_, err = suite.service.Signup(SignupInput{Name: "B", Email: "A@Example.com", Password: "password123"})
	suite.ErrorIs(err, ErrEmailTaken)
}

func (suite *AuthServiceTestSuite) TestSignup_Validation() {
	_, err := suite.service.Signup(SignupInput{Name: " ", Email: "a@example.com", Password: "password123"})
	suite.ErrorIs(err, ErrNameRequired)

	_, err = suite.service.Signup(SignupInput{Name: "A", Email: "  ", Password: "password123"})
	suite.ErrorIs(err, ErrEmailRequired)

	_, err = suite.service.Signup(SignupInput{Name: "A", Email: "a@example.com", Password: "short"})
	suite.ErrorIs(err, ErrPasswordTooShort)
}

func (suite *AuthServiceTestSuite) TestLogin() {
	_, err := suite.service.Signup(SignupInput{Name: "Casey", Email: "casey@example.com", Password: "password123"})
	suite.Require().NoError(err)

	user, err := suite.service.Login("casey@example.com", "password123")
	suite.Require().NoError(err)
	suite.Equal("Casey", user.Name)

	_, err = suite.service.Login("casey@example.com", "wrongpassword")
	suite.ErrorIs(err, ErrInvalidCredentials)

	_, err = suite.service.Login("nobody@example.com", "password123")
	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestGetUser_NotFound() {
	_, err := suite.service.GetUser(4242)
	suite.ErrorIs(err, ErrUserNotFound)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
