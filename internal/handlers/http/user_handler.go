package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/cuidar-backend/internal/domain/entities"
	"github.com/rafabene/cuidar-backend/internal/domain/errors"
	"github.com/rafabene/cuidar-backend/internal/domain/ports"
	"github.com/rafabene/cuidar-backend/internal/handlers/dto"
	"github.com/rafabene/cuidar-backend/internal/services"
)

// UserHandler lida com requisições HTTP de contas de usuário
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Login autentica por email+senha e retorna o nome do usuário
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("login: invalid payload", "fields", dto.BindingErrorFields(err))
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.Status(c, false, "login.invalid"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "error.generic"))
		return
	}

	name := user.DisplayName(entities.DefaultUserName)
	c.JSON(http.StatusOK, dto.StatusWithName(c, "login.success", name))
}

// Register cria uma nova conta
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("register: invalid payload", "fields", dto.BindingErrorFields(err))
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	err := h.userService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		if errs.Is(err, errors.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, dto.Status(c, false, "register.email_exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "error.generic"))
		return
	}

	c.JSON(http.StatusCreated, dto.Status(c, true, "register.created"))
}

// GetProfile retorna nome, email e telefone do usuário
func (h *UserHandler) GetProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "email.required"))
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), email)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.Status(c, false, "profile.not_found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "error.internal"))
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}

// UpdateProfile atualiza nome e telefone; atualizar um email inexistente
// também responde sucesso, sem verificação de existência
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update profile: invalid payload", "fields", dto.BindingErrorFields(err))
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), req.LookupEmail, req.NewName, req.NewPhone); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "profile.update_error"))
		return
	}

	c.JSON(http.StatusOK, dto.Status(c, true, "profile.updated"))
}

// ChangePassword troca a senha, exigindo apenas o tamanho mínimo
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("change password: invalid payload", "fields", dto.BindingErrorFields(err))
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "error.generic"))
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		if errs.Is(err, errors.ErrPasswordTooShort) {
			c.JSON(http.StatusBadRequest, dto.Status(c, false, "password.too_short"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Status(c, false, "password.change_error"))
		return
	}

	c.JSON(http.StatusOK, dto.Status(c, true, "password.changed"))
}

// DeleteAccount remove a conta permanentemente. Conta inexistente responde
// 500 com a razão na mensagem, formato que os clientes já consomem.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.Status(c, false, "email.required"))
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), email); err != nil {
		reason := "error.generic"
		if errs.Is(err, errors.ErrUserNotFound) {
			reason = "error.user_not_found"
		}
		response := dto.Status(c, false, "account.delete_error",
			map[string]interface{}{"Reason": dto.T(c, reason)})
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, dto.Status(c, true, "account.deleted"))
}
