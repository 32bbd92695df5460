package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/internal/catalog/usecase/command"
)

// maxImageSize bounds multipart image uploads
const maxImageSize = 10 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeJSON reads the request body into dst and validates its tags
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", domain.ErrValidation)
		}
		return fmt.Errorf("%w: invalid request body", domain.ErrValidation)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s is %s", domain.ErrValidation, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// pathID parses a positive numeric path variable
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrValidation, name)
	}
	return uint(id), nil
}

// queryInt returns nil when the parameter is absent
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return &v, nil
}

func queryBool(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}

// readImage extracts the "image" file of a multipart form
func readImage(r *http.Request) (command.ImageUpload, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxImageSize+1<<20)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return command.ImageUpload{}, fmt.Errorf("%w: invalid multipart form", domain.ErrValidation)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return command.ImageUpload{}, fmt.Errorf("%w: image file is required", domain.ErrValidation)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return command.ImageUpload{}, fmt.Errorf("%w: failed to read image", domain.ErrValidation)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return command.ImageUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
