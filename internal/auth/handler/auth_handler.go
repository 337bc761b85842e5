package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/avolkov/webauth/config"
	"github.com/avolkov/webauth/internal/auth/dto"
	"github.com/avolkov/webauth/internal/auth/service"
	"github.com/avolkov/webauth/internal/csrf"
	autherror "github.com/avolkov/webauth/internal/errors"
	"github.com/avolkov/webauth/internal/logging"
	"github.com/avolkov/webauth/internal/ratelimit"
	"github.com/avolkov/webauth/internal/session"
	"github.com/avolkov/webauth/pkg/constant"
)

const genericServerError = "an error occurred while processing the request"

type AuthHandler struct {
	userService *service.UserService
	sessions    *session.Manager
	guard       *csrf.Guard
	limiter     ratelimit.Limiter
	cfg         *config.Config
	log         logging.Logger
}

func NewAuthHandler(userService *service.UserService, sessions *session.Manager, guard *csrf.Guard,
	limiter ratelimit.Limiter, cfg *config.Config, log logging.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		guard:       guard,
		limiter:     limiter,
		cfg:         cfg,
		log:         log,
	}
}

// freshCSRF rotates the session token so every response, success or failure,
// leaves the client able to retry. When the session store itself is down an
// unbound token is returned rather than none.
func (h *AuthHandler) freshCSRF(c *fiber.Ctx, sid string) string {
	token, err := h.guard.Issue(c.Context(), sid)
	if err == nil {
		return token
	}
	h.log.Error(c.Context(), "failed to store csrf token in session", "error", err)
	token, err = csrf.GenerateToken()
	if err != nil {
		return ""
	}
	return token
}

func (h *AuthHandler) fail(c *fiber.Ctx, sid string, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
		"csrf":  h.freshCSRF(c, sid),
	})
}

// failFromError maps service errors onto the uniform envelope. Unrecognized
// errors are logged with full detail and surfaced as a generic message.
func (h *AuthHandler) failFromError(c *fiber.Ctx, sid string, err error) error {
	switch {
	case autherror.IsValidation(err),
		errors.Is(err, autherror.ErrWeakPassword),
		errors.Is(err, autherror.ErrEmailAlreadyInUse),
		errors.Is(err, autherror.ErrResetTokenExpired),
		errors.Is(err, autherror.ErrPasswordReused):
		return h.fail(c, sid, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrInvalidResetToken):
		return h.fail(c, sid, fiber.StatusUnauthorized, err.Error())
	default:
		h.log.Error(c.Context(), "internal error", "path", c.Path(), "error", err)
		return h.fail(c, sid, fiber.StatusInternalServerError, genericServerError)
	}
}

// ShowForm serves the GET form endpoints: ensure a session exists and hand the
// client a CSRF token for the upcoming POST.
func (h *AuthHandler) ShowForm(c *fiber.Ctx) error {
	sid := h.sessions.SessionID(c)
	token, err := h.guard.Issue(c.Context(), sid)
	if err != nil {
		return h.failFromError(c, sid, err)
	}
	return c.JSON(fiber.Map{"csrf": token})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := h.sessions.SessionID(c)

	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, sid, fiber.StatusBadRequest, "invalid input")
	}

	if !h.guard.Validate(c.Context(), sid, input.CSRF) {
		return h.fail(c, sid, fiber.StatusBadRequest, autherror.ErrInvalidCSRF.Error())
	}

	if _, err := h.userService.Register(c.Context(), input); err != nil {
		return h.failFromError(c, sid, err)
	}

	return c.JSON(fiber.Map{"result": 1})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := h.sessions.SessionID(c)

	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, sid, fiber.StatusBadRequest, "invalid input")
	}
	input.IP = c.IP()

	allowed, err := h.limiter.Allow(c.Context(), ratelimit.Key(constant.ActionLogin, input.IP),
		h.cfg.LoginLimit, h.cfg.LoginWindow)
	if err != nil {
		return h.failFromError(c, sid, err)
	}
	if !allowed {
		return h.fail(c, sid, fiber.StatusTooManyRequests, autherror.ErrTooManyRequests.Error())
	}

	if !h.guard.Validate(c.Context(), sid, input.CSRF) {
		return h.fail(c, sid, fiber.StatusBadRequest, autherror.ErrInvalidCSRF.Error())
	}

	user, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return h.failFromError(c, sid, err)
	}

	ctx := c.Context()
	if err := h.sessions.Store.Set(ctx, sid, constant.SessionKeyUserID, user.ID); err != nil {
		return h.failFromError(c, sid, err)
	}
	if err := h.sessions.Store.Set(ctx, sid, constant.SessionKeyUserName, user.Name); err != nil {
		return h.failFromError(c, sid, err)
	}
	if err := h.sessions.Store.Set(ctx, sid, constant.SessionKeyUserEmail, user.Email); err != nil {
		return h.failFromError(c, sid, err)
	}

	// Rotate after a successful sensitive action.
	return c.JSON(fiber.Map{
		"result": 1,
		"url":    constant.MainURL,
		"csrf":   h.freshCSRF(c, sid),
	})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	sid := h.sessions.SessionID(c)

	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, sid, fiber.StatusBadRequest, "invalid input")
	}
	input.IP = c.IP()

	allowed, err := h.limiter.Allow(c.Context(), ratelimit.Key(constant.ActionPasswordEmail, input.IP),
		h.cfg.PasswordEmailLimit, h.cfg.PasswordEmailWindow)
	if err != nil {
		return h.failFromError(c, sid, err)
	}
	if !allowed {
		return h.fail(c, sid, fiber.StatusTooManyRequests, autherror.ErrTooManyRequests.Error())
	}

	if !h.guard.Validate(c.Context(), sid, input.CSRF) {
		return h.fail(c, sid, fiber.StatusBadRequest, autherror.ErrInvalidCSRF.Error())
	}

	// The same success envelope goes out whether or not the account exists.
	if err := h.userService.RequestPasswordReset(c.Context(), input); err != nil {
		return h.failFromError(c, sid, err)
	}

	return c.JSON(fiber.Map{"result": 1})
}

// ShowResetForm validates the emailed link. Any problem with the token sends
// the visitor to the home page with no detail about why.
func (h *AuthHandler) ShowResetForm(c *fiber.Ctx) error {
	status, err := h.userService.CheckResetToken(c.Context(), c.Params("token"))
	if err != nil {
		h.log.Error(c.Context(), "reset token check failed", "error", err)
	}
	if status != service.ResetTokenValid {
		return c.Redirect(constant.HomeURL, fiber.StatusFound)
	}

	sid := h.sessions.SessionID(c)
	token, err := h.guard.Issue(c.Context(), sid)
	if err != nil {
		return h.failFromError(c, sid, err)
	}
	return c.JSON(fiber.Map{"csrf": token})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	sid := h.sessions.SessionID(c)

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return h.fail(c, sid, fiber.StatusBadRequest, "invalid input")
	}
	input.IP = c.IP()

	allowed, err := h.limiter.Allow(c.Context(), ratelimit.Key(constant.ActionPasswordChange, input.IP),
		h.cfg.PasswordChangeLimit, h.cfg.PasswordChangeWindow)
	if err != nil {
		return h.failFromError(c, sid, err)
	}
	if !allowed {
		return h.fail(c, sid, fiber.StatusTooManyRequests, autherror.ErrTooManyRequests.Error())
	}

	if input.Token == "" {
		return h.fail(c, sid, fiber.StatusBadRequest, "missing reset token")
	}

	if !h.guard.Validate(c.Context(), sid, input.CSRF) {
		return h.fail(c, sid, fiber.StatusBadRequest, autherror.ErrInvalidCSRF.Error())
	}

	if err := h.userService.ChangePassword(c.Context(), input); err != nil {
		return h.failFromError(c, sid, err)
	}

	return c.JSON(fiber.Map{"result": 1})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Destroy(c); err != nil {
		h.log.Error(c.Context(), "failed to clear session", "error", err)
	}
	return c.Redirect(constant.HomeURL, fiber.StatusFound)
}
