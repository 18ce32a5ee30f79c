// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package graph exposes the service operations over a single GraphQL
// endpoint. Every mutation resolves to a union of the requested entity
// type and a ResultStatus carrying a status code, so callers select on
// the returned variant instead of inspecting transport-level errors.
package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"pressroom/internal/models"
)

// Status is the wire form of a non-success outcome.
type Status struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// LoginSuccess carries a freshly issued bearer token.
type LoginSuccess struct {
	Token string `json:"token"`
}

// UserInfo is the outward view of a user. The password hash has no
// field here by construction.
type UserInfo struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	FName      *string `json:"fName"`
	LName      *string `json:"lName"`
	Permission string  `json:"permission"`
}

// UserList wraps a listing so it can participate in a union.
type UserList struct {
	Root []UserInfo `json:"root"`
}

// Article is the outward view of an article. Body and summary are null
// in listing results.
type Article struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pubDate"`
	ModDate time.Time `json:"modDate"`
	Body    *string   `json:"body"`
	Summary *string   `json:"summary"`
}

// ArticleList wraps a listing so it can participate in a union.
type ArticleList struct {
	Root []Article `json:"root"`
}

func userView(u *models.User) *UserInfo {
	return &UserInfo{
		ID:         u.ID.Hex(),
		Username:   u.Username,
		FName:      u.FirstName,
		LName:      u.LastName,
		Permission: string(u.Permission),
	}
}

func articleView(a *models.Article) *Article {
	return &Article{
		ID:      a.ID.Hex(),
		Title:   a.Title,
		Author:  a.Author,
		PubDate: a.PublishedAt,
		ModDate: a.ModifiedAt,
		Body:    a.Body,
		Summary: a.Summary,
	}
}

var permissionEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Permission",
	Values: graphql.EnumValueConfigMap{
		string(models.PermissionGuest): {Value: string(models.PermissionGuest)},
		string(models.PermissionStaff): {Value: string(models.PermissionStaff)},
		string(models.PermissionAdmin): {Value: string(models.PermissionAdmin)},
	},
})

var resultStatusType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ResultStatus",
	Fields: graphql.Fields{
		"message":    &graphql.Field{Type: graphql.String},
		"statusCode": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var loginSuccessType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LoginSuccess",
	Fields: graphql.Fields{
		"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var userInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserInfo",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"username":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"fName":      &graphql.Field{Type: graphql.String},
		"lName":      &graphql.Field{Type: graphql.String},
		"permission": &graphql.Field{Type: graphql.NewNonNull(permissionEnum)},
	},
})

var userListType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserList",
	Fields: graphql.Fields{
		"root": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(userInfoType))},
	},
})

var articleType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Article",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"title":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"author":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"pubDate": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"modDate": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"body":    &graphql.Field{Type: graphql.String},
		"summary": &graphql.Field{Type: graphql.String},
	},
})

var articleListType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ArticleList",
	Fields: graphql.Fields{
		"root": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(articleType))},
	},
})

// union builds a two-member union of an entity type and ResultStatus,
// discriminating on the resolver's concrete return type.
func union(name string, entity *graphql.Object, isEntity func(any) bool) *graphql.Union {
	return graphql.NewUnion(graphql.UnionConfig{
		Name:  name,
		Types: []*graphql.Object{entity, resultStatusType},
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			if isEntity(p.Value) {
				return entity
			}
			return resultStatusType
		},
	})
}

var (
	loginResultType = union("LoginResult", loginSuccessType, func(v any) bool {
		_, ok := v.(*LoginSuccess)
		return ok
	})
	userResultType = union("UserResult", userInfoType, func(v any) bool {
		_, ok := v.(*UserInfo)
		return ok
	})
	userListResultType = union("UserListResult", userListType, func(v any) bool {
		_, ok := v.(*UserList)
		return ok
	})
	articleResultType = union("ArticleResult", articleType, func(v any) bool {
		_, ok := v.(*Article)
		return ok
	})
	articleListResultType = union("ArticleListResult", articleListType, func(v any) bool {
		_, ok := v.(*ArticleList)
		return ok
	})
)

var userLoginInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserLoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var userInfoInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserInfoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"fName":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lName":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"permission": &graphql.InputObjectFieldConfig{Type: permissionEnum},
	},
})

var permissionInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PermissionInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"permission": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(permissionEnum)},
	},
})

var articleInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ArticleInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"author":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"body":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"summary": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var articlePatchInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ArticlePatchInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"author":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"body":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"summary": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})
