// Package models contains GORM database models for the infrastructure layer.
// They are kept apart from the domain entities so persistence details such as
// column types and indexes do not leak into the domain.
package models
