// Package validators holds custom validator/v10 rules and input sanitization shared by domain entities.
package validators
