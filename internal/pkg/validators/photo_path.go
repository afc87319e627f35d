package validators

import (
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PhotoPathValidation validates that a photo path has the form "<UserID>/<file>"
// where UserID is the sibling field of the validated struct.
func PhotoPathValidation(fl validator.FieldLevel) bool {
	userField := fl.Parent().FieldByName("UserID")
	if !userField.IsValid() {
		return false
	}
	userID := userField.String()
	photoPath := fl.Field().String()

	if userID == "" || !strings.HasPrefix(photoPath, userID+"/") {
		return false
	}

	fileName := strings.TrimPrefix(photoPath, userID+"/")
	if fileName == "" || strings.Contains(fileName, "/") || fileName != path.Clean(fileName) {
		return false
	}
	return path.Ext(fileName) != ""
}
