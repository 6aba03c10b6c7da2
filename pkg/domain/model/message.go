package model

import (
	"fmt"

	"github.com/slack-go/slack"
)

// AttachmentColor is the brand color applied to every user attachment
const AttachmentColor = "#73535ad"

// SlackMessage is the slash command response body. Empty text and empty
// attachments are omitted from serialization, so a success response carries
// only attachments and a failure response carries only text.
type SlackMessage struct {
	ResponseType string             `json:"response_type"`
	Text         string             `json:"text,omitempty"`
	Attachments  []slack.Attachment `json:"attachments,omitempty"`
}

// NewUserListMessage builds the in-channel response for resolved users, one
// attachment per user in result order. An empty user list yields a message
// with no attachments; that is still a success, not a lookup failure.
func NewUserListMessage(users []TwitchUser) *SlackMessage {
	var attachments []slack.Attachment
	for _, user := range users {
		attachments = append(attachments, slack.Attachment{
			Color:      AttachmentColor,
			AuthorName: fmt.Sprintf("%s: %s", user.DisplayName, user.ID),
			AuthorIcon: user.ProfileImageURL,
		})
	}

	return &SlackMessage{
		ResponseType: slack.ResponseTypeInChannel,
		Attachments:  attachments,
	}
}

// NewLookupFailedMessage builds the in-channel response for a failed lookup.
// The message repeats the original command text but never the failure cause;
// detail stays in the logs.
func NewLookupFailedMessage(text string) *SlackMessage {
	return &SlackMessage{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("User lookup failed for %s", text),
	}
}
