// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package graph

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"

	"pressroom/internal/models"
	"pressroom/internal/schema"
	"pressroom/internal/service"
	"pressroom/internal/store"
)

// ctxKey is an unexported type for context keys to prevent collisions.
type ctxKey string

// tokenKey is the context key under which the handler stores the raw
// bearer token from the Authorization header.
const tokenKey ctxKey = "token"

// WithToken stores a raw bearer token in the context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// tokenFromCtx extracts the bearer token, empty when absent.
func tokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// Resolver holds the services behind the GraphQL operations. When
// gateArticles is set, article mutations require any authenticated
// caller; reads stay open either way.
type Resolver struct {
	auth         *service.AuthService
	articles     *service.ArticleService
	gateArticles bool
}

// NewResolver creates a Resolver over the given services.
func NewResolver(auth *service.AuthService, articles *service.ArticleService, gateArticles bool) *Resolver {
	return &Resolver{auth: auth, articles: articles, gateArticles: gateArticles}
}

// statusFromError converts a modeled outcome into its wire status.
// Anything outside the five domain kinds is logged and reported as a
// generic server error, never swallowed.
func statusFromError(err error) *Status {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		return &Status{Message: verr.Error(), StatusCode: http.StatusBadRequest}
	case errors.Is(err, service.ErrUnauthorized):
		return &Status{StatusCode: http.StatusUnauthorized}
	case errors.Is(err, service.ErrForbidden):
		return &Status{StatusCode: http.StatusForbidden}
	case errors.Is(err, store.ErrNotFound):
		return &Status{StatusCode: http.StatusNotFound}
	case errors.Is(err, store.ErrDuplicateKey), errors.Is(err, store.ErrNoChange):
		return &Status{StatusCode: http.StatusConflict}
	default:
		slog.Error("unexpected store error", "error", err)
		return &Status{Message: "internal server error", StatusCode: http.StatusInternalServerError}
	}
}

// requireUser authenticates the caller from the request context.
func (r *Resolver) requireUser(ctx context.Context, required *models.Permission) (*models.User, error) {
	return r.auth.AuthenticateToken(ctx, tokenFromCtx(ctx), required)
}

func (r *Resolver) register(p graphql.ResolveParams) (any, error) {
	input := p.Args["input"].(map[string]any)
	username, _ := input["username"].(string)
	password, _ := input["password"].(string)

	user, err := r.auth.Register(p.Context, username, password)
	if err != nil {
		return statusFromError(err), nil
	}
	return userView(user), nil
}

func (r *Resolver) login(p graphql.ResolveParams) (any, error) {
	input := p.Args["input"].(map[string]any)
	username, _ := input["username"].(string)
	password, _ := input["password"].(string)

	token, err := r.auth.Login(p.Context, username, password)
	if err != nil {
		return statusFromError(err), nil
	}
	return &LoginSuccess{Token: token}, nil
}

func (r *Resolver) checkAuth(p graphql.ResolveParams) (any, error) {
	user, err := r.requireUser(p.Context, nil)
	if err != nil {
		return statusFromError(err), nil
	}
	return userView(user), nil
}

func (r *Resolver) usersList(p graphql.ResolveParams) (any, error) {
	actor, err := r.requireUser(p.Context, nil)
	if err != nil {
		return statusFromError(err), nil
	}

	users, err := r.auth.UsersList(p.Context, actor)
	if err != nil {
		return statusFromError(err), nil
	}

	root := make([]UserInfo, 0, len(users))
	for i := range users {
		root = append(root, *userView(&users[i]))
	}
	return &UserList{Root: root}, nil
}

func (r *Resolver) changePermission(p graphql.ResolveParams) (any, error) {
	actor, err := r.requireUser(p.Context, nil)
	if err != nil {
		return statusFromError(err), nil
	}

	id, _ := p.Args["id"].(string)
	input := p.Args["permission"].(map[string]any)
	permission, _ := input["permission"].(string)

	user, err := r.auth.ChangePermission(p.Context, actor, id, models.Permission(permission))
	if err != nil {
		return statusFromError(err), nil
	}
	return userView(user), nil
}

func (r *Resolver) updateInfo(p graphql.ResolveParams) (any, error) {
	user, err := r.requireUser(p.Context, nil)
	if err != nil {
		return statusFromError(err), nil
	}

	// The patch is forwarded verbatim, permission key included — the
	// service is responsible for stripping it.
	input := p.Args["input"].(map[string]any)
	patch := map[string]string{}
	if v, ok := input["fName"].(string); ok {
		patch["f_name"] = v
	}
	if v, ok := input["lName"].(string); ok {
		patch["l_name"] = v
	}
	if v, ok := input["permission"].(string); ok {
		patch["permission"] = v
	}

	updated, err := r.auth.UpdateInfo(p.Context, user, patch)
	if err != nil {
		return statusFromError(err), nil
	}
	return userView(updated), nil
}

// gate enforces the configured article-mutation policy.
func (r *Resolver) gate(ctx context.Context) *Status {
	if !r.gateArticles {
		return nil
	}
	if _, err := r.requireUser(ctx, nil); err != nil {
		return statusFromError(err)
	}
	return nil
}

func (r *Resolver) articlesList(p graphql.ResolveParams) (any, error) {
	articles, err := r.articles.List(p.Context)
	if err != nil {
		return statusFromError(err), nil
	}

	root := make([]Article, 0, len(articles))
	for i := range articles {
		root = append(root, *articleView(&articles[i]))
	}
	return &ArticleList{Root: root}, nil
}

func (r *Resolver) article(p graphql.ResolveParams) (any, error) {
	id, _ := p.Args["id"].(string)

	article, err := r.articles.Get(p.Context, id)
	if err != nil {
		return statusFromError(err), nil
	}
	return articleView(article), nil
}

func (r *Resolver) createArticle(p graphql.ResolveParams) (any, error) {
	if status := r.gate(p.Context); status != nil {
		return status, nil
	}

	input := p.Args["input"].(map[string]any)
	title, _ := input["title"].(string)
	author, _ := input["author"].(string)

	article, err := r.articles.Create(p.Context, service.ArticleInput{
		Title:   title,
		Author:  author,
		Body:    optString(input, "body"),
		Summary: optString(input, "summary"),
	})
	if err != nil {
		return statusFromError(err), nil
	}
	return articleView(article), nil
}

func (r *Resolver) updateArticle(p graphql.ResolveParams) (any, error) {
	if status := r.gate(p.Context); status != nil {
		return status, nil
	}

	id, _ := p.Args["id"].(string)
	input := p.Args["input"].(map[string]any)

	article, err := r.articles.Update(p.Context, id, service.ArticlePatch{
		Title:   optString(input, "title"),
		Author:  optString(input, "author"),
		Body:    optString(input, "body"),
		Summary: optString(input, "summary"),
	})
	if err != nil {
		return statusFromError(err), nil
	}
	return articleView(article), nil
}

func (r *Resolver) deleteArticle(p graphql.ResolveParams) (any, error) {
	if status := r.gate(p.Context); status != nil {
		return status, nil
	}

	id, _ := p.Args["id"].(string)
	if err := r.articles.Delete(p.Context, id); err != nil {
		return statusFromError(err), nil
	}
	return &Status{StatusCode: http.StatusNoContent}, nil
}

func optString(input map[string]any, key string) *string {
	if v, ok := input[key].(string); ok {
		return &v
	}
	return nil
}
