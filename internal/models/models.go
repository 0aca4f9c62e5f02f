package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Mode represents the current generation mode of the application
type Mode int

const (
	ModeChat  Mode = iota // Text chat with web-grounded search
	ModeImage             // Image generation
	ModeVideo             // Video generation
)

func (m Mode) String() string {
	switch m {
	case ModeImage:
		return "image"
	case ModeVideo:
		return "video"
	default:
		return "chat"
	}
}

// Next cycles to the following mode, wrapping around after video.
func (m Mode) Next() Mode {
	switch m {
	case ModeChat:
		return ModeImage
	case ModeImage:
		return ModeVideo
	default:
		return ModeChat
	}
}

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Kind describes how a message's content must be interpreted for rendering.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Citation is a web source backing a search-grounded answer.
type Citation struct {
	Title string
	URI   string
}

// Message is one turn in the conversation. Messages are immutable once
// created; for image and video turns Content holds the original prompt
// (the caption) and Media points at the generated payload.
type Message struct {
	ID        string
	Role      Role
	Kind      Kind
	Content   string
	Media     string
	Citations []Citation
}

func NewUserMessage(content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Kind:    KindText,
		Content: content,
	}
}

func NewTextMessage(content string, citations []Citation) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      RoleModel,
		Kind:      KindText,
		Content:   content,
		Citations: citations,
	}
}

// NewImageMessage builds an image turn. The media handle is mandatory; a
// generation without a payload must become a fallback text message instead.
func NewImageMessage(prompt, media string) (Message, error) {
	if strings.TrimSpace(media) == "" {
		return Message{}, fmt.Errorf("image message requires a media reference")
	}
	return Message{
		ID:      uuid.NewString(),
		Role:    RoleModel,
		Kind:    KindImage,
		Content: prompt,
		Media:   media,
	}, nil
}

func NewVideoMessage(prompt, media string) (Message, error) {
	if strings.TrimSpace(media) == "" {
		return Message{}, fmt.Errorf("video message requires a media reference")
	}
	return Message{
		ID:      uuid.NewString(),
		Role:    RoleModel,
		Kind:    KindVideo,
		Content: prompt,
		Media:   media,
	}, nil
}
