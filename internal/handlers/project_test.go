package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mizutani-dev/teamtrack-api/internal/constants"
	"github.com/mizutani-dev/teamtrack-api/internal/database"
	"github.com/mizutani-dev/teamtrack-api/internal/middleware"
	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
	"github.com/mizutani-dev/teamtrack-api/internal/services"
)

// setupAPITestRouter wires the full route tree, mirroring cmd/server, with a
// cookie session store and an in-memory database.
func setupAPITestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Position{},
		&models.TaskType{},
		&models.Worker{},
		&models.Project{},
		&models.ProjectAssignee{},
		&models.Task{},
		&models.TaskComment{},
		&models.ChatMessage{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	workerRepo := repository.NewWorkerRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	authService := services.NewAuthService(workerRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, projectService, nil)
	messageService := services.NewMessageService(messageRepo, taskRepo, projectRepo, projectService)

	authHandler := NewAuthHandler(authService)
	projectHandler := NewProjectHandler(projectService)
	taskHandler := NewTaskHandler(taskService)
	messageHandler := NewMessageHandler(messageService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.POST("/join", projectHandler.JoinProject)

			scoped := projects.Group("/:id", middleware.RequireProjectAccess())
			{
				scoped.GET("", projectHandler.GetProject)
				scoped.PUT("", middleware.RequireProjectCreator(), projectHandler.UpdateProject)
				scoped.DELETE("", middleware.RequireProjectCreator(), projectHandler.DeleteProject)
				scoped.POST("/invitation", middleware.RequireProjectCreator(), projectHandler.GenerateInvitationCode)

				scoped.GET("/tasks", taskHandler.ListTasks)
				scoped.POST("/tasks", taskHandler.CreateTask)
				scoped.POST("/tasks/suggest", taskHandler.SuggestTasks)

				task := scoped.Group("/tasks/:task_id", middleware.RequireTaskInProject())
				{
					task.GET("", taskHandler.GetTask)
					task.PATCH("", taskHandler.UpdateTask)
					task.DELETE("", taskHandler.DeleteTask)
					task.GET("/comments", messageHandler.ListComments)
					task.POST("/comments", messageHandler.AddComment)
				}

				scoped.GET("/chat", messageHandler.ListChat)
				scoped.POST("/chat", messageHandler.SendChatMessage)
			}
		}
	}

	return r
}

// apiClient drives the router as one logged-in worker, carrying the session
// cookie between requests.
type apiClient struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newAPIClient(t *testing.T, router *gin.Engine, username string) *apiClient {
	t.Helper()

	client := &apiClient{t: t, router: router}

	w := client.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = client.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	client.cookies = w.Result().Cookies()
	require.NotEmpty(t, client.cookies)

	return client
}

func (c *apiClient) do(method, path string, payload interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(c.t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestProjectFlow_InvitationJoinEndToEnd(t *testing.T) {
	router := setupAPITestRouter(t)
	alice := newAPIClient(t, router, "alice")
	bob := newAPIClient(t, router, "bob")

	// Alice creates a project and becomes its creator and sole assignee.
	w := alice.do(http.MethodPost, "/api/projects", map[string]string{
		"title":       "Apollo",
		"description": "moonshot",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	projectID := uint64(decodeBody(t, w)["id"].(float64))
	projectPath := fmt.Sprintf("/api/projects/%d", projectID)

	// Bob cannot see it yet: exists but denied.
	w = bob.do(http.MethodGet, projectPath, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Alice generates an invitation code.
	w = alice.do(http.MethodPost, projectPath+"/invitation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	code := decodeBody(t, w)["invitation_code"].(string)
	require.Len(t, code, constants.InvitationCodeLength)

	// Bob redeems it and becomes a member.
	w = bob.do(http.MethodPost, "/api/projects/join", map[string]string{
		"invitation_code": code,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Redeeming again is a benign no-op.
	w = bob.do(http.MethodPost, "/api/projects/join", map[string]string{
		"invitation_code": code,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, decodeBody(t, w)["message"], "already a member")

	// Bob can now view the project and list its tasks.
	w = bob.do(http.MethodGet, projectPath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = bob.do(http.MethodGet, projectPath+"/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Alice creates a task; Bob may view but not delete it.
	w = alice.do(http.MethodPost, projectPath+"/tasks", map[string]string{
		"name": "Design review",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := uint64(decodeBody(t, w)["id"].(float64))
	taskPath := fmt.Sprintf("%s/tasks/%d", projectPath, taskID)

	w = bob.do(http.MethodGet, taskPath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = bob.do(http.MethodDelete, taskPath, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Project update/delete stay creator-only.
	w = bob.do(http.MethodPut, projectPath, map[string]string{"title": "Takeover"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = bob.do(http.MethodDelete, projectPath, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProjectFlow_JoinRejectsMalformedAndUnknownCodes(t *testing.T) {
	router := setupAPITestRouter(t)
	alice := newAPIClient(t, router, "alice")

	// Malformed: wrong length, rejected before lookup.
	w := alice.do(http.MethodPost, "/api/projects/join", map[string]string{
		"invitation_code": "not-a-uuid",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Well-formed but unknown.
	w = alice.do(http.MethodPost, "/api/projects/join", map[string]string{
		"invitation_code": "00000000-0000-0000-0000-000000000000",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectFlow_UnknownProjectIs404(t *testing.T) {
	router := setupAPITestRouter(t)
	alice := newAPIClient(t, router, "alice")

	w := alice.do(http.MethodGet, "/api/projects/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectFlow_ListingIsDeduplicatedUnion(t *testing.T) {
	router := setupAPITestRouter(t)
	alice := newAPIClient(t, router, "alice")
	bob := newAPIClient(t, router, "bob")

	w := alice.do(http.MethodPost, "/api/projects", map[string]string{"title": "Mine"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = bob.do(http.MethodPost, "/api/projects", map[string]string{"title": "Joined"})
	require.Equal(t, http.StatusCreated, w.Code)
	joinedID := uint64(decodeBody(t, w)["id"].(float64))

	w = bob.do(http.MethodPost, fmt.Sprintf("/api/projects/%d/invitation", joinedID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	code := decodeBody(t, w)["invitation_code"].(string)

	w = alice.do(http.MethodPost, "/api/projects/join", map[string]string{"invitation_code": code})
	require.Equal(t, http.StatusOK, w.Code)

	w = alice.do(http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Projects []struct {
			ID    uint64 `json:"id"`
			Title string `json:"title"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Projects, 2)

	seen := map[uint64]int{}
	for _, project := range response.Projects {
		seen[project.ID]++
	}
	for id, count := range seen {
		require.Equal(t, 1, count, "project %d should appear exactly once", id)
	}
}

func TestProjectFlow_ChatAndComments(t *testing.T) {
	router := setupAPITestRouter(t)
	alice := newAPIClient(t, router, "alice")

	w := alice.do(http.MethodPost, "/api/projects", map[string]string{"title": "Chatty"})
	require.Equal(t, http.StatusCreated, w.Code)
	projectID := uint64(decodeBody(t, w)["id"].(float64))
	projectPath := fmt.Sprintf("/api/projects/%d", projectID)

	w = alice.do(http.MethodPost, projectPath+"/chat", map[string]string{"message": "kickoff at noon"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = alice.do(http.MethodGet, projectPath+"/chat", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var chat struct {
		Messages []struct {
			Message string `json:"message"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chat))
	require.Len(t, chat.Messages, 1)
	require.Equal(t, "kickoff at noon", chat.Messages[0].Message)

	// Empty chat message rejected at the validation layer.
	w = alice.do(http.MethodPost, projectPath+"/chat", map[string]string{"message": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = alice.do(http.MethodPost, projectPath+"/tasks", map[string]string{"name": "Discussable"})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := uint64(decodeBody(t, w)["id"].(float64))
	taskPath := fmt.Sprintf("%s/tasks/%d", projectPath, taskID)

	w = alice.do(http.MethodPost, taskPath+"/comments", map[string]string{"message": "looks good"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = alice.do(http.MethodGet, taskPath+"/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var comments struct {
		Comments []struct {
			Message string `json:"message"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comments))
	require.Len(t, comments.Comments, 1)
}
