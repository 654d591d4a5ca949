package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/volunteerhub/volunteer-hub-api/internal/constants"
	"github.com/volunteerhub/volunteer-hub-api/internal/database"
	"github.com/volunteerhub/volunteer-hub-api/internal/dto"
	"github.com/volunteerhub/volunteer-hub-api/internal/models"
	"github.com/volunteerhub/volunteer-hub-api/internal/repository"
	"github.com/volunteerhub/volunteer-hub-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
	service *services.TaskService
	userSeq int
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Task{},
		&models.DailyPostCount{},
		&models.Availability{},
		&models.ImpactReport{},
		&models.CommunityPost{},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(database.SeedSkills(suite.db))

	// RequireTask reads the default DB
	database.SetDB(suite.db)

	taskRepo := repository.NewTaskRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	skillRepo := repository.NewSkillRepository(suite.db)

	suite.service = services.NewTaskService(taskRepo, userRepo, skillRepo, constants.DefaultDailyPostLimit)
	rateLimiter := services.NewRateLimitService(taskRepo, constants.DefaultDailyPostLimit)
	suite.handler = NewTaskHandler(suite.service, rateLimiter)
	suite.userSeq = 0

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createTestUser(name string) *models.User {
	suite.userSeq++
	user := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("user%d@example.com", suite.userSeq),
		PasswordHash: "hashedpassword",
		City:         "Springfield",
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *TaskHandlerTestSuite) createTestTask(posterID uint64, title string) *models.Task {
	task, err := suite.service.CreateTask(services.CreateTaskInput{
		PosterID: posterID,
		Title:    title,
		City:     "Springfield",
	})
	suite.Require().NoError(err)
	return task
}

// createContext builds a request context, optionally authenticated.
func (suite *TaskHandlerTestSuite) createContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if userID != 0 {
		c.Set(constants.ContextKeyUserID, userID)
	}

	return c, w
}

// setTaskContext simulates the RequireTask middleware.
func (suite *TaskHandlerTestSuite) setTaskContext(c *gin.Context, task models.Task) {
	c.Set("task", task)
}

func (suite *TaskHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) (code, message string) {
	var resp struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code, resp.Message
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	poster := suite.createTestUser("Poster")

	body, _ := json.Marshal(CreateTaskRequest{
		Title:       "Help me weed the garden",
		Description: "The flower beds are overgrown",
		City:        "Springfield",
	})
	c, w := suite.createContext(http.MethodPost, "/api/tasks", body, poster.ID)
	suite.handler.CreateTask(c)

	suite.Equal(http.StatusCreated, w.Code)

	var task dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &task))
	suite.Equal(models.TaskStatusOpen, task.Status)
	suite.Contains(task.Skills, "Gardening")
}

func (suite *TaskHandlerTestSuite) TestCreateTask_MissingTitle() {
	poster := suite.createTestUser("Poster")

	body, _ := json.Marshal(CreateTaskRequest{Description: "no title here"})
	c, w := suite.createContext(http.MethodPost, "/api/tasks", body, poster.ID)
	suite.handler.CreateTask(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_RateLimited() {
	poster := suite.createTestUser("Poster")
	for i := 0; i < constants.DefaultDailyPostLimit; i++ {
		suite.createTestTask(poster.ID, fmt.Sprintf("Task %d", i))
	}

	body, _ := json.Marshal(CreateTaskRequest{Title: "One too many"})
	c, w := suite.createContext(http.MethodPost, "/api/tasks", body, poster.ID)
	suite.handler.CreateTask(c)

	suite.Equal(http.StatusTooManyRequests, w.Code)
	code, _ := suite.decodeError(w)
	suite.Equal("RATE_LIMIT_EXCEEDED", code)
}

func (suite *TaskHandlerTestSuite) TestAcceptTask_Success() {
	poster := suite.createTestUser("Poster")
	volunteer := suite.createTestUser("Volunteer")
	task := suite.createTestTask(poster.ID, "Walk my dog")

	c, w := suite.createContext(http.MethodPost, fmt.Sprintf("/api/tasks/%d/accept", task.ID), nil, volunteer.ID)
	suite.setTaskContext(c, *task)
	suite.handler.AcceptTask(c)

	suite.Equal(http.StatusOK, w.Code)

	var accepted dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &accepted))
	suite.Equal(models.TaskStatusAccepted, accepted.Status)
	suite.Require().NotNil(accepted.AcceptedBy)
	suite.Equal(volunteer.ID, *accepted.AcceptedBy)
}

func (suite *TaskHandlerTestSuite) TestAcceptTask_NotOpen() {
	poster := suite.createTestUser("Poster")
	first := suite.createTestUser("First")
	second := suite.createTestUser("Second")
	task := suite.createTestTask(poster.ID, "Walk my dog")

	_, err := suite.service.AcceptTask(task.ID, first.ID)
	suite.Require().NoError(err)

	c, w := suite.createContext(http.MethodPost, fmt.Sprintf("/api/tasks/%d/accept", task.ID), nil, second.ID)
	suite.setTaskContext(c, *task)
	suite.handler.AcceptTask(c)

	suite.Equal(http.StatusConflict, w.Code)
	code, _ := suite.decodeError(w)
	suite.Equal("TASK_NOT_OPEN", code)
}

func (suite *TaskHandlerTestSuite) TestAcceptTask_ActiveTaskExists() {
	poster := suite.createTestUser("Poster")
	volunteer := suite.createTestUser("Volunteer")
	held := suite.createTestTask(poster.ID, "Held task")
	next := suite.createTestTask(poster.ID, "Next task")

	_, err := suite.service.AcceptTask(held.ID, volunteer.ID)
	suite.Require().NoError(err)

	c, w := suite.createContext(http.MethodPost, fmt.Sprintf("/api/tasks/%d/accept", next.ID), nil, volunteer.ID)
	suite.setTaskContext(c, *next)
	suite.handler.AcceptTask(c)

	suite.Equal(http.StatusConflict, w.Code)
	code, message := suite.decodeError(w)
	suite.Equal("ACTIVE_TASK_EXISTS", code)
	suite.Contains(message, "current task")
}

func (suite *TaskHandlerTestSuite) TestCompleteTask_Success() {
	poster := suite.createTestUser("Poster")
	volunteer := suite.createTestUser("Volunteer")
	task := suite.createTestTask(poster.ID, "Fix the faucet")

	_, err := suite.service.AcceptTask(task.ID, volunteer.ID)
	suite.Require().NoError(err)

	body, _ := json.Marshal(CompleteTaskRequest{Notes: "Fixed and tested"})
	c, w := suite.createContext(http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", task.ID), body, volunteer.ID)
	suite.setTaskContext(c, *task)
	suite.handler.CompleteTask(c)

	suite.Equal(http.StatusOK, w.Code)

	var done dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &done))
	suite.Equal(models.TaskStatusCompleted, done.Status)
	suite.Equal("Fixed and tested", done.CompletionNotes)
}

func (suite *TaskHandlerTestSuite) TestCompleteTask_NotAuthorized() {
	poster := suite.createTestUser("Poster")
	volunteer := suite.createTestUser("Volunteer")
	intruder := suite.createTestUser("Intruder")
	task := suite.createTestTask(poster.ID, "Water plants")

	_, err := suite.service.AcceptTask(task.ID, volunteer.ID)
	suite.Require().NoError(err)

	body, _ := json.Marshal(CompleteTaskRequest{})
	c, w := suite.createContext(http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", task.ID), body, intruder.ID)
	suite.setTaskContext(c, *task)
	suite.handler.CompleteTask(c)

	suite.Equal(http.StatusForbidden, w.Code)
	code, _ := suite.decodeError(w)
	suite.Equal("NOT_AUTHORIZED", code)
}

func (suite *TaskHandlerTestSuite) TestCompleteTask_AlreadyCompleted() {
	poster := suite.createTestUser("Poster")
	volunteer := suite.createTestUser("Volunteer")
	task := suite.createTestTask(poster.ID, "Water plants")

	_, err := suite.service.AcceptTask(task.ID, volunteer.ID)
	suite.Require().NoError(err)
	_, err = suite.service.CompleteTask(task.ID, volunteer.ID, "", "")
	suite.Require().NoError(err)

	body, _ := json.Marshal(CompleteTaskRequest{})
	c, w := suite.createContext(http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", task.ID), body, volunteer.ID)
	suite.setTaskContext(c, *task)
	suite.handler.CompleteTask(c)

	suite.Equal(http.StatusConflict, w.Code)
	code, _ := suite.decodeError(w)
	suite.Equal("ALREADY_COMPLETED", code)
}

func (suite *TaskHandlerTestSuite) TestListTasks_AnonymousHasNoScores() {
	poster := suite.createTestUser("Poster")
	suite.createTestTask(poster.ID, "A task")

	c, w := suite.createContext(http.MethodGet, "/api/tasks", nil, 0)
	suite.handler.ListTasks(c)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TaskListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Tasks, 1)
	suite.Nil(resp.Tasks[0].MatchScore)
	suite.Equal(int64(1), resp.TotalCount)
}

func (suite *TaskHandlerTestSuite) TestListTasks_AuthenticatedGetsScores() {
	poster := suite.createTestUser("Poster")
	volunteer := suite.createTestUser("Volunteer")
	suite.createTestTask(poster.ID, "A task")

	c, w := suite.createContext(http.MethodGet, "/api/tasks", nil, volunteer.ID)
	suite.handler.ListTasks(c)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TaskListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Tasks, 1)
	suite.Require().NotNil(resp.Tasks[0].MatchScore)
	// Same city, no shared skills
	suite.Equal(constants.MatchCityBonus, *resp.Tasks[0].MatchScore)
}

func (suite *TaskHandlerTestSuite) TestLimit_Shape() {
	poster := suite.createTestUser("Poster")
	suite.createTestTask(poster.ID, "A task")

	c, w := suite.createContext(http.MethodGet, "/api/tasks/limit", nil, poster.ID)
	suite.handler.Limit(c)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RateLimitDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.PostsToday)
	suite.Equal(constants.DefaultDailyPostLimit, resp.DailyLimit)
	suite.Equal(constants.DefaultDailyPostLimit-1, resp.Remaining)
	suite.True(resp.CanPost)
}

func (suite *TaskHandlerTestSuite) TestActiveTask_NullWhenIdle() {
	volunteer := suite.createTestUser("Volunteer")

	c, w := suite.createContext(http.MethodGet, "/api/tasks/active", nil, volunteer.ID)
	suite.handler.ActiveTask(c)

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Task *dto.TaskDTO `json:"task"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Nil(resp.Task)
}

// TestTaskHandlerTestSuite runs the test suite
func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
