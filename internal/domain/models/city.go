package models

type City struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	State    string  `json:"state" bson:"state"`
	JobCount int     `json:"jobCount" bson:"jobCount"`
	ImageURL *string `json:"imageUrl" bson:"imageUrl"`
}

type InsertCity struct {
	Name     string
	State    string
	JobCount int
	ImageURL *string
}
