// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// NewSchema wires the resolver into an executable GraphQL schema.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"articlesList": &graphql.Field{
				Type:    articleListResultType,
				Resolve: r.articlesList,
			},
			"article": &graphql.Field{
				Type: articleResultType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.article,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: userResultType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userLoginInputType)},
				},
				Resolve: r.register,
			},
			"login": &graphql.Field{
				Type: loginResultType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userLoginInputType)},
				},
				Resolve: r.login,
			},
			"checkAuth": &graphql.Field{
				Type:    userResultType,
				Resolve: r.checkAuth,
			},
			"usersList": &graphql.Field{
				Type:    userListResultType,
				Resolve: r.usersList,
			},
			"changePermission": &graphql.Field{
				Type: userResultType,
				Args: graphql.FieldConfigArgument{
					"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"permission": &graphql.ArgumentConfig{Type: graphql.NewNonNull(permissionInputType)},
				},
				Resolve: r.changePermission,
			},
			"updateInfo": &graphql.Field{
				Type: userResultType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userInfoInputType)},
				},
				Resolve: r.updateInfo,
			},
			"createArticle": &graphql.Field{
				Type: articleResultType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(articleInputType)},
				},
				Resolve: r.createArticle,
			},
			"updateArticle": &graphql.Field{
				Type: articleResultType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(articlePatchInputType)},
				},
				Resolve: r.updateArticle,
			},
			"deleteArticle": &graphql.Field{
				Type: resultStatusType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.deleteArticle,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("build graphql schema: %w", err)
	}
	return schema, nil
}
