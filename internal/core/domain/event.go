package domain

import (
	"bytes"
	"encoding/json"
	"io"

	"go.trai.ch/zerr"
)

// Hook event names acted upon by the hook handler.
const (
	HookUserPromptSubmit = "UserPromptSubmit"
	HookSessionEnd       = "SessionEnd"
	HookStatus           = "Status"
)

// Event is the JSON document the host CLI writes to stdin. Unrecognized fields
// are ignored.
type Event struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	HookEventName  string `json:"hook_event_name"`
	DisplayName    string `json:"display_name"`
	CurrentDir     string `json:"current_dir"`
	Cwd            string `json:"cwd"`
	Model          struct {
		DisplayName string `json:"display_name"`
	} `json:"model"`
	Workspace struct {
		CurrentDir string `json:"current_dir"`
	} `json:"workspace"`
}

// ModelName returns the display name of the model, wherever the payload put it.
func (e *Event) ModelName() string {
	if e.Model.DisplayName != "" {
		return e.Model.DisplayName
	}
	return e.DisplayName
}

// Dir returns the working directory of the session, wherever the payload put it.
func (e *Event) Dir() string {
	switch {
	case e.Workspace.CurrentDir != "":
		return e.Workspace.CurrentDir
	case e.CurrentDir != "":
		return e.CurrentDir
	default:
		return e.Cwd
	}
}

// IsHook reports whether the event comes from a hook rather than a status render.
func (e *Event) IsHook() bool {
	return e.HookEventName != "" && e.HookEventName != HookStatus
}

// DecodeEvent reads at most MaxEventBytes from r. Empty input yields a zero Event.
func DecodeEvent(r io.Reader) (Event, error) {
	var ev Event
	if r == nil {
		return ev, nil
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxEventBytes))
	if err != nil {
		return ev, zerr.Wrap(err, ErrEventDecodeFailed.Error())
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ev, nil
	}
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, zerr.Wrap(err, ErrEventDecodeFailed.Error())
	}
	return ev, nil
}
