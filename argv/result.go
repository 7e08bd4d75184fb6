package argv

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Result is the structured form of an argument vector.
type Result struct {
	// App is the program name with its first ".ext" run removed. Only set
	// when the first token had such a suffix; HasApp tells the cases apart
	// since App may legitimately be empty (".py" -> "").
	App    string
	HasApp bool

	// Command is the first token after App when it is not an option.
	Command    string
	HasCommand bool

	Options Options
}

type resultJSON struct {
	App     *string `json:"app"`
	Command *string `json:"command"`
	Options Options `json:"options"`
}

// MarshalJSON encodes r as {"app":..,"command":..,"options":{..}} with
// absent fields as null.
func (r *Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Options: r.Options}
	if r.HasApp {
		out.App = &r.App
	}
	if r.HasCommand {
		out.Command = &r.Command
	}
	return json.Marshal(out)
}

// MarshalYAML encodes r as an ordered app/command/options mapping.
func (r *Result) MarshalYAML() (any, error) {
	var app, command any
	if r.HasApp {
		app = r.App
	}
	if r.HasCommand {
		command = r.Command
	}
	return yaml.MapSlice{
		{Key: "app", Value: app},
		{Key: "command", Value: command},
		{Key: "options", Value: r.Options.mapSlice()},
	}, nil
}
