package http

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hostbison-signup/internal/deploy"
	"hostbison-signup/internal/domain"
	"hostbison-signup/internal/service"
	"hostbison-signup/internal/validation"
)

const listLimit = 100

// Handler wires HTTP routes to domain services.
type Handler struct {
	users     service.UserService
	hook      *deploy.Hook
	logger    *logrus.Logger
	origin    string
	staticDir string
}

func NewHandler(users service.UserService, hook *deploy.Hook, logger *logrus.Logger, origin, staticDir string) *Handler {
	return &Handler{
		users:     users,
		hook:      hook,
		logger:    logger,
		origin:    origin,
		staticDir: staticDir,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware(h.origin))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "Method not allowed"})
	})

	api := router.Group("/api")
	{
		api.POST("/register", h.register)
		api.GET("/users", h.listUsers)
		if h.hook != nil {
			api.POST("/deploy", h.deployHook)
		}
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	if h.staticDir != "" {
		router.StaticFile("/", filepath.Join(h.staticDir, "index.html"))
		router.Static("/static", h.staticDir)
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

func (h *Handler) requestLogger(c *gin.Context) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	})
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON input"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), validation.Candidate{
		Name:            req.Name,
		Email:           req.Email,
		Company:         req.Company,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.registerError(c, err)
		return
	}

	h.requestLogger(c).WithField("email", user.Email).Info("user registered")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

func (h *Handler) registerError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   verr.Error(),
			"errors":  verr.Fields,
		})
	case errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email already registered",
			"errors":  []validation.FieldError{{Field: "email", Code: "email_taken", Message: "Email already registered"}},
		})
	default:
		h.requestLogger(c).WithError(err).Error("registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Registration failed. Please try again."})
	}
}

type userResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	CreatedAt string `json:"created_at"`
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.ListRecent(c.Request.Context(), listLimit)
	if err != nil {
		h.requestLogger(c).WithError(err).Error("fetch users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch users"})
		return
	}

	resp := make([]userResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    resp,
		"count":   len(resp),
	})
}

func userToResponse(user domain.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Company:   user.Company,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) deployHook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if err := h.hook.VerifySignature(body, c.GetHeader("X-Hub-Signature-256")); err != nil {
		h.requestLogger(c).Warn("deploy webhook signature mismatch")
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Invalid signature"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	output, err := h.hook.Run(ctx)
	if err != nil {
		h.requestLogger(c).WithError(err).Error("deployment failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Deployment failed"})
		return
	}

	h.requestLogger(c).Info("deployment triggered")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Deployment successful", "output": output})
}
