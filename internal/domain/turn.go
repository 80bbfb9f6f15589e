// Package domain defines the core domain models for the chat router.
package domain

import "time"

// TimestampLayout is the fixed-width UTC layout used for turn sequence
// timestamps. Fixed width keeps lexicographic and chronological order equal.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Turn is one user-message/bot-response pair within a session.
// Turns are append-only and ordered by Timestamp within a session.
type Turn struct {
	SessionID   string `json:"session_id" dynamodbav:"session_id"`
	Timestamp   string `json:"timestamp" dynamodbav:"timestamp"`
	UserMessage string `json:"user_message" dynamodbav:"user_message"`
	BotResponse string `json:"bot_response" dynamodbav:"bot_response"`
	Domain      Domain `json:"domain" dynamodbav:"domain"`
	ModelID     string `json:"model_id" dynamodbav:"model_id"`
}

// AnalyticsRecord is the durable copy of a turn written to the analytics sink.
type AnalyticsRecord struct {
	SessionID   string `json:"session_id"`
	Timestamp   string `json:"timestamp"`
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
	Domain      Domain `json:"domain"`
	ModelID     string `json:"model_id"`
}

// NewAnalyticsRecord copies turn into a record stamped with ts.
func NewAnalyticsRecord(turn *Turn, ts time.Time) *AnalyticsRecord {
	return &AnalyticsRecord{
		SessionID:   turn.SessionID,
		Timestamp:   FormatTimestamp(ts),
		UserMessage: turn.UserMessage,
		BotResponse: turn.BotResponse,
		Domain:      turn.Domain,
		ModelID:     turn.ModelID,
	}
}
