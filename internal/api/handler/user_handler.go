package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

// UploadPrefix is the URL prefix under which uploaded files are served.
const UploadPrefix = "/uploads"

type UserHandler struct {
	users     ports.UserService
	uploadDir string
}

func NewUserHandler(users ports.UserService, uploadDir string) *UserHandler {
	return &UserHandler{users: users, uploadDir: uploadDir}
}

// List returns all users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create adds a user on behalf of an owner.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      signupRequest  true  "User"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  messageResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.users.Create(c.Request().Context(), ports.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateRole changes a user's role.
//
// @Summary      Set user role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "User ID"
// @Param        body  body      roleRequest  true  "Role"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  messageResponse
// @Router       /users/{id}/role [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req roleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.users.UpdateRole(c.Request().Context(), c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SetActive activates or deactivates a user.
//
// @Summary      Activate or deactivate user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true  "User ID"
// @Param        is_active  query     bool    true  "Active flag"
// @Success      200        {object}  domain.User
// @Failure      404        {object}  messageResponse
// @Router       /users/{id}/activate [patch]
func (h *UserHandler) SetActive(c echo.Context) error {
	active, err := strconv.ParseBool(c.QueryParam("is_active"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "is_active must be a boolean")
	}
	user, err := h.users.SetActive(c.Request().Context(), c.Param("id"), active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateSelf changes the caller's username or password.
//
// @Summary      Update own account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      selfUpdateRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  messageResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateSelf(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	var req selfUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.users.UpdateSelf(c.Request().Context(), u.ID, ports.SelfUpdateInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UploadProfilePicture stores the caller's picture under the upload
// directory and records its public path.
//
// @Summary      Upload profile picture
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        profile_picture  formData  file  true  "Image"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  messageResponse
// @Router       /users/me/profile-picture [put]
func (h *UserHandler) UploadProfilePicture(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile("profile_picture")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "profile_picture file is required")
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	name := u.ID + "_" + filepath.Base(fh.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write upload file: %w", err)
	}

	user, err := h.users.SetProfilePicture(c.Request().Context(), u.ID, UploadPrefix+"/"+name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
