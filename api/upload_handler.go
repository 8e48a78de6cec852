package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/thecosmeticshop/backend/utils"
)

const uploadFolder = "thecosmeticshop"

// UploadHandler stores a multipart image in S3 and responds with the stored
// URL as a plain string body, which is what the storefront expects to drop
// straight into an image field.
func (a *API) UploadHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Upload API]")

	// 10 MB limit
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		utils.RespondError(w, &logMessageBuilder, "Only jpg, jpeg and png images are allowed", http.StatusBadRequest)
		return
	}

	objectKey := fmt.Sprintf("%s/%s%s", uploadFolder, uuid.New().String(), ext)

	if _, err := a.Uploads.Upload(r.Context(), file, objectKey, header.Header.Get("Content-Type")); err != nil {
		a.serverError(w, &logMessageBuilder, "Error uploading file")
		return
	}

	url := a.Uploads.ObjectURL(objectKey)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Uploaded %s", objectKey))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(url))
}
