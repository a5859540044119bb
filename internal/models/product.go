package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product — a document in the "products" collection. Image holds the
// filename of an uploaded file under the public root; it is absent from the
// document when no file was ever uploaded.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Qty         int                `bson:"qty"`
}
