// Package models lists the OpenAI chat models that can serve as a
// translation provider for the configured API key.
package models
