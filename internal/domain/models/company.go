package models

import "time"

type Company struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Logo        *string   `json:"logo" bson:"logo"`
	Description *string   `json:"description" bson:"description"`
	Website     *string   `json:"website" bson:"website"`
	Industry    *string   `json:"industry" bson:"industry"`
	Size        *string   `json:"size" bson:"size"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type InsertCompany struct {
	Name        string
	Logo        *string
	Description *string
	Website     *string
	Industry    *string
	Size        *string
}
