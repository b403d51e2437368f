package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

func TestUserHandler_UploadProfilePicture(t *testing.T) {
	dir := t.TempDir()
	var gotPath string
	stub := &stubUserService{
		setPictureFn: func(ctx context.Context, id, path string) (*domain.User, error) {
			gotPath = path
			return &domain.User{ID: id, ProfilePicture: path}, nil
		},
	}
	h := NewUserHandler(stub, dir)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("profile_picture", "../avatar.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write([]byte("png-bytes"))
	_ = mw.Close()

	c, rec := newContext(http.MethodPut, "/users/me/profile-picture", &body, mw.FormDataContentType())
	withUser(c, &domain.User{ID: "u1", Username: "alice", Role: domain.RoleEmployee})

	if err := h.UploadProfilePicture(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotPath != "/uploads/u1_avatar.png" {
		t.Fatalf("unexpected stored path %q", gotPath)
	}
	data, err := os.ReadFile(filepath.Join(dir, "u1_avatar.png"))
	if err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestUserHandler_UploadProfilePicture_MissingFile(t *testing.T) {
	h := NewUserHandler(&stubUserService{}, t.TempDir())

	c, _ := newContext(http.MethodPut, "/users/me/profile-picture", strings.NewReader(""), echo.MIMEApplicationForm)
	withUser(c, &domain.User{ID: "u1"})

	err := h.UploadProfilePicture(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_UpdateSelf(t *testing.T) {
	stub := &stubUserService{
		updateSelfFn: func(ctx context.Context, id string, in ports.SelfUpdateInput) (*domain.User, error) {
			if id != "u1" || in.Username == nil || *in.Username != "alicia" || in.Password != nil {
				t.Fatalf("unexpected call: %s %+v", id, in)
			}
			return &domain.User{ID: id, Username: *in.Username}, nil
		},
	}
	h := NewUserHandler(stub, "")

	c, rec := newContext(http.MethodPut, "/users/me", strings.NewReader(`{"username":"alicia"}`), echo.MIMEApplicationJSON)
	withUser(c, &domain.User{ID: "u1", Username: "alice"})

	if err := h.UpdateSelf(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_SetActive_RequiresBool(t *testing.T) {
	h := NewUserHandler(&stubUserService{}, "")

	c, _ := newContext(http.MethodPatch, "/users/u2/activate?is_active=maybe", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("u2")

	err := h.SetActive(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
