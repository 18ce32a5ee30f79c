// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Users declares the shape of the users collection. Usernames are unique
// across all users, enforced by the store.
var Users = Definition{
	Collection: "users",
	Fields: []Field{
		{Name: "username", Type: "string", Required: true, MinLength: 4, MaxLength: 32},
		{Name: "passwd_hash", Type: "binData", Required: true, MaxLength: 64},
		{Name: "f_name", Type: "string", MaxLength: 32},
		{Name: "l_name", Type: "string", MaxLength: 32},
		{Name: "permission", Type: "string", Required: true, Default: "guest",
			Enum: []string{"guest", "staff", "admin"}},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
}

// Articles declares the shape of the articles collection. Titles are
// unique; the compound index serves the listing projection.
var Articles = Definition{
	Collection: "articles",
	Fields: []Field{
		{Name: "title", Type: "string", Required: true, MinLength: 1, MaxLength: 64},
		{Name: "author", Type: "string", Required: true, MinLength: 4, MaxLength: 32},
		{Name: "pub_date", Type: "date", Required: true, Default: "$$NOW"},
		{Name: "mod_date", Type: "date", Required: true, Default: "$$NOW"},
		{Name: "body", Type: "string"},
		{Name: "summary", Type: "string"},
	},
	Indexes: []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "pub_date", Value: 1},
				{Key: "mod_date", Value: 1},
				{Key: "author", Value: 1},
			},
		},
	},
}

// All lists every registered definition. Sync runs over this set at
// process start.
var All = []Definition{Users, Articles}

// PasswordMinLen and PasswordMaxLen bound the plaintext password, which
// is never persisted and therefore has no field declaration.
const (
	PasswordMinLen = 8
	PasswordMaxLen = 32
)
