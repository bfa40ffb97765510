package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"

	"runway.app/api/internal/service"
	"runway.app/api/internal/store"
)

const uniqueViolation = "23505"

var jsonNamesOnce sync.Once

// UseJSONFieldNames makes gin's validator report fields by their json names.
func UseJSONFieldNames() {
	jsonNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
			}
			return name
		})
	})
}

// respondBindError answers 400 for a request that failed binding.
func respondBindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = describeFieldError(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "alpha":
		return "must contain letters only"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}

// respondError maps service errors to status codes. Anything unrecognised is
// logged and answered with 500 and the given public message.
func respondError(c *gin.Context, err error, message string) {
	ctx := c.Request.Context()

	if v, ok := service.IsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": v.Fields})
		return
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrNotMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "not a member of this organization"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	case errors.Is(err, store.ErrDuplicate), errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		slog.InfoContext(ctx, "unique constraint violated", "error", err)
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, service.ErrOrganizationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
	default:
		slog.ErrorContext(ctx, message, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
