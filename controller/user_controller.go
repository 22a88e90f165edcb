// controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ed_errors "github.com/dev-mohitbeniwal/eventdesk/errors"
	"github.com/dev-mohitbeniwal/eventdesk/model"
	"github.com/dev-mohitbeniwal/eventdesk/service"
	"github.com/dev-mohitbeniwal/eventdesk/util"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterPublicRoutes registers the routes reachable without a token
func (uc *UserController) RegisterPublicRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", uc.Register)
		auth.GET("/confirm-email", uc.ConfirmEmail)
		auth.POST("/login", uc.Login)
		auth.POST("/request-password-reset", uc.RequestPasswordReset)
		auth.POST("/reset-password", uc.ResetPassword)
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", uc.Me)
		auth.POST("/change-password", uc.ChangePassword)
		auth.POST("/change-name", uc.ChangeName)
	}
}

// Register endpoint
func (uc *UserController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}

	user, err := uc.userService.Register(c, req)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to register user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ConfirmEmail endpoint: ?token=<confirmation code>
func (uc *UserController) ConfirmEmail(c *gin.Context) {
	code := c.Query("token")
	if code == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Missing confirmation token", ed_errors.ErrInvalidInput)
		return
	}

	alreadyConfirmed, err := uc.userService.ConfirmEmail(c, code)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to confirm email", err)
		return
	}

	message := "Email confirmed"
	if alreadyConfirmed {
		message = "Email already confirmed"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Login endpoint
func (uc *UserController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid credentials", err)
		return
	}

	resp, err := uc.userService.Login(c, req.Email, req.Password)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to log in", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RequestPasswordReset endpoint
func (uc *UserController) RequestPasswordReset(c *gin.Context) {
	var req model.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid email", err)
		return
	}

	if err := uc.userService.RequestPasswordReset(c, req.Email); err != nil {
		util.RespondWithDomainError(c, "Failed to request password reset", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ResetPassword endpoint
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid password reset", err)
		return
	}

	if err := uc.userService.ResetPassword(c, req.Token, req.NewPassword); err != nil {
		util.RespondWithDomainError(c, "Failed to reset password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// Me endpoint
func (uc *UserController) Me(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	user, err := uc.userService.GetUser(c, userID)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to retrieve user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword endpoint
func (uc *UserController) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid password change", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := uc.userService.ChangePassword(c, userID, req.CurrentPassword, req.NewPassword); err != nil {
		util.RespondWithDomainError(c, "Failed to change password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// ChangeName endpoint
func (uc *UserController) ChangeName(c *gin.Context) {
	var req model.ChangeNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid name", err)
		return
	}
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	user, err := uc.userService.ChangeName(c, userID, req.Name)
	if err != nil {
		util.RespondWithDomainError(c, "Failed to change name", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
