// Package outfits contains the outfit suggestion domain: prompt construction,
// validation of stylist replies and wardrobe gap analysis.
package outfits
