package validator_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillscenter/internal/domain"
	apperror "skillscenter/internal/errors"
	"skillscenter/internal/pkg/validator"
)

type slideBody struct {
	Title       domain.LocalizedText  `json:"title" validate:"required,localized"`
	Description *domain.LocalizedText `json:"description" validate:"omitempty,localized"`
	ImageURL    string                `json:"imageUrl" validate:"required,min=1"`
	Order       *domain.FlexInt       `json:"order"`
}

type updateSlideRequest struct {
	Params struct {
		ID string `param:"id" validate:"required,uuid"`
	} `json:"params"`
	Query struct {
		Lang string `query:"lang" validate:"omitempty,oneof=en fr ar"`
	} `json:"query"`
	Body slideBody `json:"body"`
}

func newRequest(t *testing.T, id, query, body string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPut, "/api/hero-slides/"+id+query, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func paths(err error) []string {
	var out []string
	for _, f := range apperror.Fields(err) {
		out = append(out, f.Path)
	}
	return out
}

func TestBind_Success(t *testing.T) {
	v := validator.New()
	r := newRequest(t, "3f1c2f5e-6a7b-4c8d-9e0f-1a2b3c4d5e6f", "?lang=fr",
		`{"title":{"en":"Welcome","fr":"Bienvenue","ar":"مرحبا"},"imageUrl":"/uploads/a.jpg","order":"2"}`)

	var req updateSlideRequest
	require.NoError(t, v.Bind(r, &req))
	assert.Equal(t, "3f1c2f5e-6a7b-4c8d-9e0f-1a2b3c4d5e6f", req.Params.ID)
	assert.Equal(t, "fr", req.Query.Lang)
	require.NotNil(t, req.Body.Order)
	assert.Equal(t, 2, req.Body.Order.Int())
}

func TestBind_CollectsFieldErrorsAcrossSections(t *testing.T) {
	v := validator.New()
	r := newRequest(t, "not-a-uuid", "?lang=de", `{"title":{"en":"Welcome","fr":""},"imageUrl":""}`)

	var req updateSlideRequest
	err := v.Bind(r, &req)
	require.Error(t, err)

	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Validation failed", vErr.Msg)
	assert.ElementsMatch(t, []string{
		"params.id",
		"query.lang",
		"body.title.fr",
		"body.title.ar",
		"body.imageUrl",
	}, paths(err))
}

func TestBind_LegacyPlainTitleAccepted(t *testing.T) {
	v := validator.New()
	r := newRequest(t, "3f1c2f5e-6a7b-4c8d-9e0f-1a2b3c4d5e6f", "", `{"title":"Welcome","imageUrl":"/uploads/a.jpg"}`)

	var req updateSlideRequest
	require.NoError(t, v.Bind(r, &req))
	assert.False(t, req.Body.Title.IsLocalized())
}

func TestBind_MissingRequiredLocalized(t *testing.T) {
	v := validator.New()
	r := newRequest(t, "3f1c2f5e-6a7b-4c8d-9e0f-1a2b3c4d5e6f", "", `{"imageUrl":"/uploads/a.jpg"}`)

	var req updateSlideRequest
	err := v.Bind(r, &req)
	require.Error(t, err)
	assert.Equal(t, []string{"body.title"}, paths(err))
}

func TestBind_OptionalLocalizedValidatedWhenPresent(t *testing.T) {
	v := validator.New()
	r := newRequest(t, "3f1c2f5e-6a7b-4c8d-9e0f-1a2b3c4d5e6f", "",
		`{"title":"Welcome","imageUrl":"/uploads/a.jpg","description":{"en":"x"}}`)

	var req updateSlideRequest
	err := v.Bind(r, &req)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"body.description.fr", "body.description.ar"}, paths(err))
}

func TestBind_MalformedJSON(t *testing.T) {
	v := validator.New()
	r := newRequest(t, "3f1c2f5e-6a7b-4c8d-9e0f-1a2b3c4d5e6f", "", `{"title":`)

	var req updateSlideRequest
	err := v.Bind(r, &req)
	require.Error(t, err)
	assert.Equal(t, []string{"body"}, paths(err))
}

func TestBind_WrongPrimitiveType(t *testing.T) {
	v := validator.New()
	r := newRequest(t, "3f1c2f5e-6a7b-4c8d-9e0f-1a2b3c4d5e6f", "", `{"title":"x","imageUrl":42}`)

	var req updateSlideRequest
	err := v.Bind(r, &req)
	require.Error(t, err)
	assert.Equal(t, []string{"body.imageUrl"}, paths(err))
}

func TestStruct_Messages(t *testing.T) {
	v := validator.New()
	type login struct {
		Body domain.LoginRequest `json:"body"`
	}

	err := v.Struct(&login{Body: domain.LoginRequest{Email: "nope", Password: "123"}})
	require.Error(t, err)

	msgs := map[string]string{}
	for _, f := range apperror.Fields(err) {
		msgs[f.Path] = f.Message
	}
	assert.Equal(t, "Invalid email address", msgs["body.email"])
	assert.Equal(t, "Must be at least 6 characters", msgs["body.password"])
}

func TestBind_ErrorPathsUseWireNames(t *testing.T) {
	v := validator.New()
	type listRequest struct {
		Params struct {
			SlideID string `param:"id" validate:"required,uuid"`
		} `json:"params"`
		Query struct {
			ContentType string `query:"type" validate:"omitempty,oneof=NEWS EVENT"`
		} `json:"query"`
	}
	r := newRequest(t, "abc", "?type=BLOG", "")

	var req listRequest
	err := v.Bind(r, &req)
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"params.id", "query.type"}, paths(err))
}
