package guide

import _ "embed"

const (
	Filename = "main.py"
	Port     = 8000
)

//go:embed main.py
var script string

// Script returns the reference FastAPI backend shown to users.
func Script() string {
	return script
}

type Step struct {
	Text string
	Code string
}

// Steps lists how to get the reference script running locally.
var Steps = []Step{
	{Text: "Create a folder and save the code above as", Code: Filename},
	{Text: "Install dependencies:", Code: "pip install fastapi uvicorn yt-dlp"},
	{Text: "Run server:", Code: "python " + Filename},
}
