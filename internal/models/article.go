// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article represents a content record in the articles collection.
// Body and Summary are omitted when the record is loaded through the
// listing projection.
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Author      string             `bson:"author" json:"author"`
	PublishedAt time.Time          `bson:"pub_date" json:"pub_date"`
	ModifiedAt  time.Time          `bson:"mod_date" json:"mod_date"`
	Body        *string            `bson:"body,omitempty" json:"body,omitempty"`
	Summary     *string            `bson:"summary,omitempty" json:"summary,omitempty"`
}
