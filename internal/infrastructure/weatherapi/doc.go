// Package weatherapi implements the OpenWeatherMap provider and a Redis backed observation cache.
package weatherapi
