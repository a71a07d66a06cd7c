package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/skill-swap/backend/internal/api/types"
	"github.com/skill-swap/backend/internal/services"
	appErr "github.com/skill-swap/backend/pkg/errors"
)

type ProfileHandler struct {
	users          services.UserService
	maxUploadBytes int64
}

func NewProfileHandler(users services.UserService, maxUploadBytes int64) *ProfileHandler {
	return &ProfileHandler{users: users, maxUploadBytes: maxUploadBytes}
}

// Get godoc
// @Summary      Fetch a profile
// @Tags         profile
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  models.User
// @Failure      404     {object}  types.ErrorResponse
// @Router       /profile/{userId} [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetProfile(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Update godoc
// @Summary      Update a profile
// @Description  Only the supplied fields change. List fields accept repeated values or comma-separated text.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        userId           path      string  true   "User id"
// @Param        name             formData  string  false  "Display name"
// @Param        location         formData  string  false  "Location"
// @Param        bio              formData  string  false  "Bio"
// @Param        theme            formData  string  false  "UI theme"
// @Param        skillsOffered    formData  string  false  "Offered skills"
// @Param        skillsWanted     formData  string  false  "Wanted skills"
// @Param        availability     formData  string  false  "Availability slots"
// @Param        isPublic         formData  string  false  "0 or 1"
// @Param        profilePhotoUrl  formData  string  false  "Photo URL, empty clears it"
// @Param        profilePhoto     formData  file    false  "png, jpg, jpeg or gif"
// @Success      200              {object}  types.ProfileUpdateResponse
// @Failure      400              {object}  types.ErrorResponse
// @Failure      404              {object}  types.ErrorResponse
// @Failure      409              {object}  types.ErrorResponse
// @Router       /profile/{userId} [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := parseForm(r, h.maxUploadBytes); err != nil {
		writeError(w, r, err)
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	in, err := profileInput(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	file, header, err := r.FormFile("profilePhoto")
	switch {
	case err == nil:
		defer file.Close()
		in.Photo = &services.PhotoUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		writeError(w, r, appErr.Wrap(err, appErr.CodeInvalid, "Invalid profile photo upload"))
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), chi.URLParam(r, "userId"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.ProfileUpdateResponse{Message: "Profile updated successfully", UserProfile: u})
}

func parseForm(r *http.Request, maxBytes int64) error {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxBytes)
	} else {
		err = r.ParseForm()
	}
	if err == nil {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return appErr.Wrap(err, appErr.CodeInvalid, "Profile photo is too large")
	}
	return appErr.Wrap(err, appErr.CodeInvalid, "Invalid form data")
}

func profileInput(r *http.Request) (*services.UpdateProfileInput, error) {
	in := &services.UpdateProfileInput{
		Name:          formString(r, "name"),
		Location:      formString(r, "location"),
		Bio:           formString(r, "bio"),
		Theme:         formString(r, "theme"),
		SkillsOffered: formList(r, "skillsOffered"),
		SkillsWanted:  formList(r, "skillsWanted"),
		Availability:  formList(r, "availability"),
		PhotoURL:      formString(r, "profilePhotoUrl"),
	}
	if raw := formString(r, "isPublic"); raw != nil {
		v, err := types.ParseFlexBool(*raw)
		if err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInvalid, "isPublic must be 0 or 1")
		}
		in.IsPublic = &v
	}
	return in, nil
}

// formString distinguishes an absent field (nil) from an empty one.
func formString(r *http.Request, key string) *string {
	vals, ok := r.PostForm[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}

// formList splits comma-separated values, trimming items and dropping blanks.
// An empty value clears the list.
func formList(r *http.Request, key string) *[]string {
	vals, ok := r.PostForm[key]
	if !ok {
		return nil
	}
	out := []string{}
	for _, v := range vals {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return &out
}
