package forms

import (
	"strings"

	"github.com/dmitrijs2005/casekeeper/internal/client/models"
)

func ValidateLogin(in models.LoginInput) Result[models.LoginInput] {
	errs := make(FieldErrors)

	out := models.LoginInput{
		Email: required(errs, "email", in.Email, "Email is required"),
		// passwords are sent as typed
		Password: in.Password,
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	}

	if len(errs) > 0 {
		return invalid[models.LoginInput](errs)
	}
	return valid(out)
}

func ValidateRegister(in models.RegisterInput) Result[models.RegisterInput] {
	errs := make(FieldErrors)

	out := models.RegisterInput{
		Email:           required(errs, "email", in.Email, "Email is required"),
		Name:            required(errs, "name", in.Name, "Name is required"),
		Password:        in.Password,
		PasswordConfirm: in.PasswordConfirm,
		Photo:           strings.TrimSpace(in.Photo),
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	} else if in.Password != in.PasswordConfirm {
		errs["passwordConfirm"] = "Passwords do not match"
	}
	if out.Photo == "" {
		out.Photo = models.DefaultPhoto
	}

	if len(errs) > 0 {
		return invalid[models.RegisterInput](errs)
	}
	return valid(out)
}
